package lattice

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Record is one row of the simulation results table.
type Record struct {
	// Linear lattice size. Described as "L" in the plots.
	L int

	// Reduced temperature, "T*".
	T float64

	// Mean magnetization at that temperature.
	M float64

	// Magnetic susceptibility at that temperature.
	S float64
}

type Records []Record

// Sizes is the fixed list of lattice sizes the charts show, in
// display order.
var Sizes = []int{6, 15, 40, 70}

// Columns the input header has to name.
var required = []string{"l", "t", "m", "s"}

// Load reads a whitespace-delimited results table from path.
func Load(path string) (Records, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Read parses a results table whose first line is a header naming at
// least the l, t, m and s columns. Columns with other names are
// ignored. Fields are separated by any run of spaces or tabs.
func Read(r io.Reader) (Records, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New("empty input, expected a header line")
	}

	cols := make(map[string]int)
	for i, name := range strings.Fields(sc.Text()) {
		cols[name] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("header is missing column %q", name)
		}
	}

	var recs Records
	line := 1
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		var (
			rec Record
			err error
		)
		if rec.L, err = intField(fields, cols["l"]); err == nil {
			if rec.T, err = floatField(fields, cols["t"]); err == nil {
				if rec.M, err = floatField(fields, cols["m"]); err == nil {
					rec.S, err = floatField(fields, cols["s"])
				}
			}
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

func intField(fields []string, i int) (int, error) {
	if i >= len(fields) {
		return 0, fmt.Errorf("row has %d fields, need at least %d", len(fields), i+1)
	}
	return strconv.Atoi(fields[i])
}

func floatField(fields []string, i int) (float64, error) {
	if i >= len(fields) {
		return 0, fmt.Errorf("row has %d fields, need at least %d", len(fields), i+1)
	}
	return strconv.ParseFloat(fields[i], 64)
}

// Group holds every record for one lattice size, sorted by ascending
// temperature.
type Group struct {
	Size    int
	Records Records
}

type Groups []Group

// GroupBySize buckets records by lattice size, one group per entry of
// sizes in the given order. Records whose size is not listed are
// dropped; a listed size with no records yields an empty group.
func (recs Records) GroupBySize(sizes []int) Groups {
	groups := make(Groups, 0, len(sizes))
	for _, size := range sizes {
		g := Group{Size: size}
		for _, rec := range recs {
			if rec.L == size {
				g.Records = append(g.Records, rec)
			}
		}
		sort.SliceStable(g.Records, func(i, j int) bool {
			return g.Records[i].T < g.Records[j].T
		})
		groups = append(groups, g)
	}
	return groups
}
