package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/maysay-D/grouping-tool/types"
)

// Stream reads blank-line-delimited blocks, one group per block.
//
// Block sizes are unbounded during accumulation; the batch strategy splits
// oversized groups down to size afterwards. Lines are trimmed and empty
// blocks are skipped, so runs of blank lines do not produce empty groups.
type Stream struct {
	r io.Reader
}

var _ types.RosterSource = (*Stream)(nil)

// NewStream creates a batch roster source reading from r.
//
// Parameters:
//   - r: Line-oriented input (a pipe or file)
//
// Returns:
//   - *Stream: Initialized stream source
//
// Example:
//
//	src := source.NewStream(os.Stdin)
//	planner, err := grouping.NewPlanner(src, grouping.WithStrategy(strategy.NewBatch()))
func NewStream(r io.Reader) *Stream {
	return &Stream{r: r}
}

// ReadGroups collects blocks until EOF or cancellation.
//
// The context is checked between line reads; on cancellation the groups
// accumulated so far (including a partial trailing block) are returned
// with a nil error.
//
// Returns:
//   - []types.Group: One group per non-empty block, in input order
//   - error: Underlying read error, nil on EOF or cancellation
func (s *Stream) ReadGroups(ctx context.Context) ([]types.Group, error) {
	var (
		groups  []types.Group
		current types.Group
	)
	seal := func() {
		if current.Size() > 0 {
			groups = append(groups, current)
			current = types.Group{}
		}
	}

	scanner := bufio.NewScanner(s.r)
	for {
		select {
		case <-ctx.Done():
			seal()
			return groups, nil
		default:
		}

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			seal()
			continue
		}

		// Append directly: batch blocks may exceed GroupCapacity, which
		// Add would clamp.
		current.Members = append(current.Members, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}
	seal()

	return groups, nil
}
