package ioformat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/floorfield/evacsim/internal/environment"
	"github.com/floorfield/evacsim/internal/gridkit"
	"github.com/floorfield/evacsim/internal/pedestrian"
)

// ErrMalformedHeader indicates the environment file's first line is not a
// valid "L C" pair of positive integers.
var ErrMalformedHeader = errors.New("ioformat: malformed environment header")

// ErrMalformedRow indicates a body row's length does not match the
// declared column count C.
var ErrMalformedRow = errors.New("ioformat: row length does not match column count")

// ErrMalformedCell indicates a body character outside the set
// {#, _, ., p, P}.
var ErrMalformedCell = errors.New("ioformat: unrecognized cell character")

// ParseEnvironment reads the environment file format: a header line
// "L C", then L rows of C characters drawn from {#, _, ., p, P}
// (wall, door/exit, empty, pedestrian — upper and lower case equivalent).
// Door cells are marked impassable in the obstacle grid while being
// exposed as a single-cell exit in the exits grid, per the data model.
// Returns the built Environment, the coordinates of every door cell
// found in scan order (callers combine adjacent door cells into multi-cell exits if
// their layout requires it), and the pedestrians found in scan order
// (1-based ids assigned row-major).
// Complexity: O(L×C).
func ParseEnvironment(r io.Reader) (*environment.Environment, []gridkit.Coordinate, []*pedestrian.Pedestrian, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, nil, nil, fmt.Errorf("%w: empty file", ErrMalformedHeader)
	}
	lines, columns, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, nil, nil, err
	}

	env, err := environment.New(lines, columns)
	if err != nil {
		return nil, nil, nil, err
	}

	var doors []gridkit.Coordinate
	var pedestrians []*pedestrian.Pedestrian
	nextID := 1

	for lin := 0; lin < lines; lin++ {
		if !scanner.Scan() {
			return nil, nil, nil, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedRow, lines, lin)
		}
		row := scanner.Text()
		if len(row) != columns {
			return nil, nil, nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrMalformedRow, lin, len(row), columns)
		}
		for col, ch := range row {
			c := gridkit.Coordinate{Lin: lin, Col: col}
			switch ch {
			case '#':
				env.SetWall(c)
			case '_':
				env.SetExitCell(c)
				doors = append(doors, c)
			case '.':
				// plain empty cell, nothing to mark
			case 'p', 'P':
				ped := pedestrian.New(nextID, c)
				pedestrians = append(pedestrians, ped)
				nextID++
			default:
				return nil, nil, nil, fmt.Errorf("%w: %q at row %d col %d", ErrMalformedCell, ch, lin, col)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, nil, err
	}
	return env, doors, pedestrians, nil
}

func parseHeader(line string) (lines, columns int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	lines, err = strconv.Atoi(fields[0])
	if err != nil || lines <= 0 {
		return 0, 0, fmt.Errorf("%w: bad line count %q", ErrMalformedHeader, fields[0])
	}
	columns, err = strconv.Atoi(fields[1])
	if err != nil || columns <= 0 {
		return 0, 0, fmt.Errorf("%w: bad column count %q", ErrMalformedHeader, fields[1])
	}
	return lines, columns, nil
}
