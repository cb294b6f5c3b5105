package scene

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Warning reports one scene-file field that could not be parsed. The field
// is omitted from the snapshot; parsing of the rest of the line and file
// continues.
type Warning struct {
	Line  int
	Key   Key
	Token string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s: bad token %q", w.Line, w.Key, w.Token)
}

// Parse scans scene text line by line and builds a snapshot of every
// recognized parameter. Unrecognized lines are ignored; recognized lines
// with unparseable fields drop only the broken field. When the same key
// appears on multiple lines the last occurrence wins.
func Parse(text string) (Snapshot, []Warning) {
	snap := make(Snapshot)
	var warnings []Warning

	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		warnings = append(warnings, parseLine(lineNo, line, snap)...)
	}
	return snap, warnings
}

func parseLine(lineNo int, line string, snap Snapshot) []Warning {
	tokens := strings.Fields(line)
	addr := tokens[0]
	if !strings.HasPrefix(addr, "/") {
		return nil
	}

	kind, number, rest, ok := splitEntity(addr)
	if !ok {
		return nil
	}

	entity := func(p Param) Key { return Key{Kind: kind, Number: number, Param: p} }

	switch {
	case rest == "mix":
		// Composite form: "/ch/01/mix OFF +8.1 ..." carries the on switch
		// and the fader level as the two leading fields.
		var warns []Warning
		if len(tokens) >= 2 {
			if on, ok := parseOnOff(tokens[1]); ok {
				snap[entity(ParamOn)] = on
			} else {
				warns = append(warns, Warning{Line: lineNo, Key: entity(ParamOn), Token: tokens[1]})
			}
		}
		if len(tokens) >= 3 {
			if db, err := strconv.ParseFloat(tokens[2], 64); err == nil {
				snap[entity(ParamFader)] = FaderDB(db)
			} else {
				warns = append(warns, Warning{Line: lineNo, Key: entity(ParamFader), Token: tokens[2]})
			}
		}
		return warns

	case rest == "mix/on" && len(tokens) >= 2:
		if on, ok := parseOnOff(tokens[1]); ok {
			snap[entity(ParamOn)] = on
			return nil
		}
		return []Warning{{Line: lineNo, Key: entity(ParamOn), Token: tokens[1]}}

	case rest == "mix/fader" && len(tokens) >= 2:
		if db, err := strconv.ParseFloat(tokens[1], 64); err == nil {
			snap[entity(ParamFader)] = FaderDB(db)
			return nil
		}
		return []Warning{{Line: lineNo, Key: entity(ParamFader), Token: tokens[1]}}

	case rest == "mix/pan" && len(tokens) >= 2:
		if pan, err := strconv.ParseFloat(tokens[1], 64); err == nil {
			snap[entity(ParamPan)] = Pan(pan)
			return nil
		}
		return []Warning{{Line: lineNo, Key: entity(ParamPan), Token: tokens[1]}}

	case rest == "config/name" && kind != KindMain && len(tokens) >= 2:
		raw := strings.TrimSpace(line[len(addr):])
		snap[entity(ParamName)] = Name(strings.Trim(raw, `"`))
		return nil
	}
	return nil
}

// splitEntity resolves the leading entity path of an address token:
// /ch/NN/..., /bus/NN/... or /main/st/.... Anything else is not ours.
func splitEntity(addr string) (Kind, int, string, bool) {
	parts := strings.SplitN(addr[1:], "/", 3)
	if len(parts) < 3 {
		return 0, 0, "", false
	}
	switch parts[0] {
	case "ch", "bus":
		number, err := strconv.Atoi(parts[1])
		if err != nil || number < 1 {
			return 0, 0, "", false
		}
		kind := KindChannel
		if parts[0] == "bus" {
			kind = KindBus
		}
		return kind, number, parts[2], true
	case "main":
		if parts[1] != "st" {
			return 0, 0, "", false
		}
		return KindMain, 0, parts[2], true
	default:
		return 0, 0, "", false
	}
}

func parseOnOff(token string) (On, bool) {
	switch token {
	case "ON":
		return On(true), true
	case "OFF":
		return On(false), true
	default:
		return false, false
	}
}
