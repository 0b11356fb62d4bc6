package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/maysay-D/grouping-tool/internal/metrics"
	"github.com/maysay-D/grouping-tool/types"
)

// Input commands recognized by the interactive source. Everything else is
// treated as an identifier.
const (
	// CommandNext seals the group currently being filled even if it is
	// below capacity and starts a new one.
	CommandNext = "/next"

	// CommandRemove deletes the most recently added occurrence of the
	// named identifier: "/remove S001".
	CommandRemove = "/remove"
)

// Interactive reads identifiers line by line and accumulates them into
// capacity-capped groups.
//
// Lines are trimmed; blank lines are ignored. A group seals automatically
// at capacity, or early via CommandNext. CommandRemove supports correcting
// typos before the roster is finalized. Hooks fire synchronously between
// reads so a terminal front end can echo feedback.
type Interactive struct {
	r       io.Reader
	hooks   *types.Hooks
	metrics types.MetricsCollector
}

var _ types.RosterSource = (*Interactive)(nil)

// NewInteractive creates an interactive roster source reading from r.
//
// Parameters:
//   - r: Line-oriented input (typically os.Stdin)
//   - hooks: Optional feedback callbacks (may be nil)
//
// Returns:
//   - *Interactive: Initialized interactive source
func NewInteractive(r io.Reader, hooks *types.Hooks) *Interactive {
	return &Interactive{r: r, hooks: hooks, metrics: metrics.NewNop()}
}

// SetMetrics installs a metrics collector for roster events. A nil
// collector restores the default no-op collector.
func (s *Interactive) SetMetrics(m types.MetricsCollector) {
	if m == nil {
		m = metrics.NewNop()
	}
	s.metrics = m
}

// ReadGroups accumulates identifiers until EOF or cancellation.
//
// The context is checked between line reads; on cancellation the groups
// accumulated so far are returned with a nil error; ending input early is
// cooperative termination, not a failure.
//
// Returns:
//   - []types.Group: Accumulated groups in arrival order
//   - error: Underlying read error, nil on EOF or cancellation
func (s *Interactive) ReadGroups(ctx context.Context) ([]types.Group, error) {
	builder := types.NewBuilder()
	scanner := bufio.NewScanner(s.r)

	for {
		select {
		case <-ctx.Done():
			s.metrics.RecordInputCancelled()
			return s.finish(builder), nil
		default:
		}

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue

		case line == CommandNext:
			index := builder.SealedCount()
			builder.Next()
			if builder.SealedCount() > index {
				s.hooks.GroupComplete(index, builder.SealedGroup(index))
			}

		case line == CommandRemove || strings.HasPrefix(line, CommandRemove+" "):
			member := strings.TrimSpace(strings.TrimPrefix(line, CommandRemove))
			if member == "" {
				continue
			}
			if builder.Remove(member) {
				s.metrics.RecordMemberRemoved()
			}

		default:
			index := builder.SealedCount()
			completed := builder.Add(line)
			s.metrics.RecordMemberAccepted()
			s.hooks.MemberAdded(line, index)
			if completed {
				s.hooks.GroupComplete(index, builder.SealedGroup(index))
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}

	return s.finish(builder), nil
}

// finish seals any trailing partial group, announcing it like groups sealed
// mid-session.
func (s *Interactive) finish(builder *types.Builder) []types.Group {
	index := builder.SealedCount()
	groups := builder.Groups()
	if len(groups) > index {
		s.hooks.GroupComplete(index, groups[index])
	}

	return groups
}
