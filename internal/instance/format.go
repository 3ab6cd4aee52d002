package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/piwi3910/CubeStow/internal/model"
)

// ErrInvalidQuantity is returned when an instance file carries a
// negative quantity or a non-positive dimension.
var ErrInvalidQuantity = errors.New("instance: quantities must be non-negative integers")

// Write serializes instances in the batch text format:
//
//	<N>
//	<id> <seed>
//	<L> <W> <H>
//	<T>
//	<t> <d1> <o1> <d2> <o2> <d3> <o3> <qty>   (one line per type)
func Write(w io.Writer, instances []model.Instance) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(instances))
	for _, in := range instances {
		fmt.Fprintf(bw, "%d %d\n", in.ID, in.Seed)
		fmt.Fprintf(bw, "%d %d %d\n", in.L, in.W, in.H)
		fmt.Fprintf(bw, "%d\n", len(in.Boxes))
		for i, bq := range in.Boxes {
			bt := bq.Type
			fmt.Fprintf(bw, "%d %d %d %d %d %d %d %d\n",
				i+1,
				bt.L, boolFlag(bt.RotL),
				bt.W, boolFlag(bt.RotW),
				bt.H, boolFlag(bt.RotH),
				bq.Quantity)
		}
	}
	return bw.Flush()
}

// WriteFile writes instances to a file, creating it if needed.
func WriteFile(path string, instances []model.Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Write(f, instances); err != nil {
		return err
	}
	return f.Sync()
}

// Read parses a batch of instances from the text format.
func Read(r io.Reader) ([]model.Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	fields, err := nextFields(sc)
	if err != nil {
		return nil, fmt.Errorf("instance: missing batch header: %w", err)
	}
	var count int
	if _, err := fmt.Sscanf(fields, "%d", &count); err != nil || count < 0 {
		return nil, fmt.Errorf("instance: bad instance count %q", fields)
	}

	instances := make([]model.Instance, 0, count)
	for i := 0; i < count; i++ {
		in, err := readInstance(sc)
		if err != nil {
			return nil, fmt.Errorf("instance %d: %w", i+1, err)
		}
		instances = append(instances, in)
	}
	return instances, nil
}

// ReadFile reads a batch of instances from a file.
func ReadFile(path string) ([]model.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

func readInstance(sc *bufio.Scanner) (model.Instance, error) {
	var in model.Instance

	line, err := nextFields(sc)
	if err != nil {
		return in, err
	}
	if _, err := fmt.Sscanf(line, "%d %d", &in.ID, &in.Seed); err != nil {
		return in, fmt.Errorf("bad id/seed line %q", line)
	}

	line, err = nextFields(sc)
	if err != nil {
		return in, err
	}
	if _, err := fmt.Sscanf(line, "%d %d %d", &in.L, &in.W, &in.H); err != nil {
		return in, fmt.Errorf("bad container line %q", line)
	}
	if in.L <= 0 || in.W <= 0 || in.H <= 0 {
		return in, fmt.Errorf("container %dx%dx%d: %w", in.L, in.W, in.H, ErrInvalidQuantity)
	}

	line, err = nextFields(sc)
	if err != nil {
		return in, err
	}
	var types int
	if _, err := fmt.Sscanf(line, "%d", &types); err != nil || types < 0 {
		return in, fmt.Errorf("bad type count %q", line)
	}

	in.Boxes = make([]model.BoxQuantity, 0, types)
	for t := 0; t < types; t++ {
		line, err = nextFields(sc)
		if err != nil {
			return in, err
		}
		var id, d1, o1, d2, o2, d3, o3, qty int
		if _, err := fmt.Sscanf(line, "%d %d %d %d %d %d %d %d",
			&id, &d1, &o1, &d2, &o2, &d3, &o3, &qty); err != nil {
			return in, fmt.Errorf("bad box type line %q", line)
		}
		if d1 <= 0 || d2 <= 0 || d3 <= 0 || qty < 0 {
			return in, fmt.Errorf("box type %d: %w", id, ErrInvalidQuantity)
		}
		in.Boxes = append(in.Boxes, model.BoxQuantity{
			Type: model.BoxType{
				ID: id,
				L:  d1, W: d2, H: d3,
				RotL: o1 == 1, RotW: o2 == 1, RotH: o3 == 1,
				Weight: 1,
			},
			Quantity: qty,
		})
	}
	return in, nil
}

// nextFields returns the next non-blank line with comments stripped.
func nextFields(sc *bufio.Scanner) (string, error) {
	for sc.Scan() {
		line := sc.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
