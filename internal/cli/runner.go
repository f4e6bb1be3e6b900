package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"boxshogi/internal/boxshogi"
	"boxshogi/internal/game"
)

// Runner 把文本输入输出接到 game.Manager 上
type Runner struct {
	mgr    *game.Manager
	msgs   *Messages
	out    io.Writer
	logger *zap.Logger
	// strict 为 true 时交互模式的非法动作直接判负，否则提示后重新输入
	strict bool
}

func NewRunner(mgr *game.Manager, msgs *Messages, out io.Writer, logger *zap.Logger, strict bool) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if msgs == nil {
		msgs = NewMessages("en")
	}
	return &Runner{mgr: mgr, msgs: msgs, out: out, logger: logger, strict: strict}
}

// RunInteractive 标准开局，从 in 逐行读取动作
func (r *Runner) RunInteractive(ctx context.Context, in io.Reader) error {
	g := r.mgr.NewGame()
	r.logger.Info("game started", zap.String("game", g.ID), zap.String("mode", "interactive"))
	return r.Interactive(ctx, g.ID, in)
}

// RunFile 载入测试文件并按顺序执行其中的动作
func (r *Runner) RunFile(path string) error {
	tc, err := LoadTestCase(path)
	if err != nil {
		return err
	}
	var g *game.GameState
	if tc.Setup != nil {
		if g, err = r.mgr.NewGameFromSetup(*tc.Setup); err != nil {
			return err
		}
	} else {
		g = r.mgr.NewGame()
	}
	r.logger.Info("game started",
		zap.String("game", g.ID),
		zap.String("mode", "file"),
		zap.String("path", path),
		zap.Int("moves", len(tc.Moves)),
	)
	return r.File(g.ID, tc.Moves)
}

func (r *Runner) Interactive(ctx context.Context, id string, in io.Reader) error {
	snap, err := r.mgr.Get(id)
	if err != nil {
		return err
	}
	sc := bufio.NewScanner(in)
	echo := ""
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(r.out, Status(snap, echo))
		if snap.State != boxshogi.InProgress {
			fmt.Fprintln(r.out)
			return nil
		}
		if !sc.Scan() {
			fmt.Fprintln(r.out)
			return sc.Err()
		}

		line := strings.TrimSpace(sc.Text())
		if strings.EqualFold(line, "exit") {
			r.logger.Info("game exited", zap.String("game", id), zap.Int("turn", snap.Turns))
			return nil
		}
		a, err := boxshogi.ParseAction(line)
		if err != nil {
			fmt.Fprintln(r.out, r.msgs.InvalidInput())
			continue
		}
		if !r.strict {
			if err := r.mgr.Validate(id, a); err != nil {
				r.logger.Debug("action refused", zap.String("game", id), zap.String("action", line), zap.Error(err))
				fmt.Fprintln(r.out, r.help(snap, err))
				continue
			}
		}

		mover := snap.SideToMove
		out, err := r.mgr.Apply(id, a)
		if err != nil {
			return err
		}
		if out.Status == boxshogi.Rejected {
			fmt.Fprintln(r.out, r.msgs.Help(out.Err))
			continue
		}
		echo = Echo(mover, line)
		if snap, err = r.mgr.Get(id); err != nil {
			return err
		}
	}
}

// File 依次执行 moves，直到对局结束或动作用完，最后输出终局状态。
// 文件模式无法重新输入，格式错误的行按非法动作处理。
func (r *Runner) File(id string, moves []string) error {
	snap, err := r.mgr.Get(id)
	if err != nil {
		return err
	}
	echo := ""
	for _, line := range moves {
		if snap.State != boxshogi.InProgress {
			break
		}
		echo = Echo(snap.SideToMove, line)
		if err := r.play(id, line); err != nil {
			return err
		}
		if snap, err = r.mgr.Get(id); err != nil {
			return err
		}
	}
	fmt.Fprint(r.out, Status(snap, echo))
	fmt.Fprintln(r.out)
	return nil
}

func (r *Runner) play(id, line string) error {
	out, err := r.mgr.Submit(id, line)
	if err != nil {
		return err
	}
	if out.Status == boxshogi.Rejected {
		r.logger.Debug("malformed action", zap.String("game", id), zap.String("action", line), zap.Error(out.Err))
		return r.mgr.Forfeit(id)
	}
	return nil
}

func (r *Runner) help(snap game.Snapshot, err error) string {
	if snap.InCheck {
		return r.msgs.InCheck()
	}
	return r.msgs.Help(err)
}
