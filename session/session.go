package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathstep/bfs"
	"github.com/katalvlaran/pathstep/config"
	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/dijkstra"
	"github.com/katalvlaran/pathstep/render"
)

// Manual-mode commands, one per input line.
const (
	CmdStep   = "n"
	CmdReset  = "r"
	CmdFinish = "f"
	CmdQuit   = "q"
)

const help = "commands: <enter>/n step, f finish, r reset, q quit\n"

// Session couples a solver to a renderer and a pacing policy.
type Session struct {
	cfg      config.Config
	solver   *dijkstra.Solver
	renderer *render.Renderer
	out      io.Writer
	log      logrus.FieldLogger
	runs     int
}

// New validates cfg and prepares a session over g. Frames go to out, logs to
// log (the standard logger when nil). An unreachable destination is only
// warned about here; it becomes an error when the run finishes.
func New(cfg config.Config, g *core.Graph, out io.Writer, log logrus.FieldLogger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Session{
		cfg:      cfg,
		renderer: render.New(out, cfg.RenderOptions()...),
		out:      out,
		log:      log.WithField("source", cfg.Source),
	}

	solver, err := dijkstra.New(g, cfg.Source, dijkstra.WithObserver(s.observe))
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if !g.HasVertex(cfg.Destination) {
		return nil, fmt.Errorf("session: destination %d: %w", cfg.Destination, dijkstra.ErrVertexNotFound)
	}
	s.solver = solver

	ok, err := bfs.Reachable(g, cfg.Source, cfg.Destination)
	if err != nil {
		return nil, fmt.Errorf("session: reachability: %w", err)
	}
	if !ok {
		s.log.WithField("destination", cfg.Destination).Warn("destination is not reachable from source")
	}
	s.log.WithFields(logrus.Fields{
		"vertices": g.Len(),
		"edges":    g.EdgeCount(),
		"graph":    cfg.Graph,
	}).Debug("session ready")

	return s, nil
}

// Solver exposes the driven solver for inspection.
func (s *Session) Solver() *dijkstra.Solver { return s.solver }

// Runs returns how many runs have reached termination.
func (s *Session) Runs() int { return s.runs }

func (s *Session) observe(st dijkstra.Step) {
	fields := logrus.Fields{
		"action": st.Action.String(),
		"vertex": st.Vertex,
		"phase":  st.To.String(),
	}
	if st.HasEdge {
		fields["edge"] = fmt.Sprintf("%d→%d", st.Vertex, st.Edge.To)
		fields["improved"] = st.Improved
	}
	s.log.WithFields(fields).Debug("step")
}

// Run advances the solver once per interval until it terminates, printing
// a frame after every step. With Loop set it resets and continues until ctx
// is done. Cancellation is a normal exit and returns nil.
func (s *Session) Run(ctx context.Context) error {
	if err := s.frame(nil); err != nil {
		return err
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Debug("run cancelled")
			return nil
		case <-ticker.C:
		}
		// A tick and a cancellation can be ready together.
		if ctx.Err() != nil {
			return nil
		}

		done, err := s.step()
		if err != nil {
			return err
		}
		if !done {
			continue
		}
		if !s.cfg.Loop {
			return nil
		}
		if err := s.reset(); err != nil {
			return err
		}
	}
}

// RunManual reads commands from in, one per line, until q, EOF or an error.
// ctx is checked between lines.
func (s *Session) RunManual(ctx context.Context, in io.Reader) error {
	if _, err := io.WriteString(s.out, help); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if err := s.frame(nil); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		var err error
		switch cmd := strings.ToLower(strings.TrimSpace(sc.Text())); cmd {
		case "", CmdStep:
			if s.solver.IsDone() {
				s.log.Info("search finished; r to reset, q to quit")
				continue
			}
			_, err = s.step()
		case CmdFinish:
			if s.solver.IsDone() {
				continue
			}
			s.solver.Run()
			err = s.finish()
		case CmdReset:
			err = s.reset()
		case CmdQuit:
			return nil
		default:
			s.log.WithField("command", cmd).Warn("unknown command")
		}
		if err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("session: read commands: %w", err)
	}

	return nil
}

// step performs one Advance and prints its frame, or the final frame when
// the solver just terminated.
func (s *Session) step() (bool, error) {
	s.solver.Advance()
	if !s.solver.IsDone() {
		return false, s.frame(nil)
	}

	return true, s.finish()
}

// finish prints the final frame with the path to the destination.
func (s *Session) finish() error {
	s.runs++
	dest := s.cfg.Destination
	path, err := s.solver.ShortestPathTo(dest)
	if err != nil {
		s.log.WithError(err).WithField("destination", dest).Error("no path to destination")
		if ferr := s.frame(nil); ferr != nil {
			return ferr
		}

		return fmt.Errorf("session: %w", err)
	}
	e, _ := s.solver.Entry(dest)
	s.log.WithFields(logrus.Fields{
		"destination": dest,
		"distance":    e.Distance,
		"steps":       s.solver.Steps(),
	}).Info("search finished")

	return s.frame(path)
}

func (s *Session) reset() error {
	if err := s.solver.Reset(s.cfg.Source); err != nil {
		return fmt.Errorf("session: reset: %w", err)
	}
	s.log.Info("restarting search")

	return s.frame(nil)
}

func (s *Session) frame(path []core.VertexID) error {
	if err := s.renderer.Frame(s.solver.Snapshot(), path); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	return nil
}
