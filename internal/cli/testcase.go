package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"boxshogi/internal/boxshogi"
)

var ErrInvalidTestCase = errors.New("invalid test case")

// TestCase 文件模式的输入。Setup 为 nil 表示标准开局。
//
// 文件格式：
//
//	# 注释
//	pieces:
//	d a1
//	+R c3
//	captures UPPER: S P
//	captures lower: n
//	moves:
//	move a1 a2
//	drop n b3
type TestCase struct {
	Setup *boxshogi.Setup
	Moves []string
}

const (
	sectionNone = iota
	sectionPieces
	sectionMoves
)

func LoadTestCase(path string) (*TestCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open test case: %w", err)
	}
	defer f.Close()
	return ParseTestCase(f)
}

func ParseTestCase(r io.Reader) (*TestCase, error) {
	tc := &TestCase{}
	var setup boxshogi.Setup
	hasPieces, hasCaptures := false, false
	section := sectionNone

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case line == "pieces:":
			if hasPieces {
				return nil, lineError(lineNo, "duplicate pieces section")
			}
			hasPieces = true
			section = sectionPieces
			continue
		case line == "moves:":
			section = sectionMoves
			continue
		case strings.HasPrefix(line, "captures UPPER:"):
			setup.UpperCaptures = strings.Fields(strings.TrimPrefix(line, "captures UPPER:"))
			hasCaptures = true
			continue
		case strings.HasPrefix(line, "captures lower:"):
			setup.LowerCaptures = strings.Fields(strings.TrimPrefix(line, "captures lower:"))
			hasCaptures = true
			continue
		}

		switch section {
		case sectionPieces:
			fields := strings.Fields(line)
			if len(fields) != 2 {
				return nil, lineError(lineNo, "want \"<piece> <square>\", got %q", line)
			}
			setup.Pieces = append(setup.Pieces, boxshogi.Placement{Name: fields[0], At: fields[1]})
		case sectionMoves:
			tc.Moves = append(tc.Moves, line)
		default:
			return nil, lineError(lineNo, "line outside any section: %q", line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read test case: %w", err)
	}

	if hasCaptures && !hasPieces {
		return nil, fmt.Errorf("%w: captures need a pieces section", ErrInvalidTestCase)
	}
	if hasPieces {
		if _, err := boxshogi.NewPositionFromSetup(setup); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTestCase, err)
		}
		tc.Setup = &setup
	}
	return tc, nil
}

func lineError(n int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrInvalidTestCase, n, fmt.Sprintf(format, args...))
}
