package snapshot

import (
	osexec "os/exec"
	"strconv"
	"strings"
)

// procInfo is one row of `ps -eo pid=,ppid=,etimes=,args=`. etimes (elapsed
// seconds since start) stands in for the process start time the original
// implementation reads from sysinfo: the lower the value, the more
// recently the process started.
type procInfo struct {
	pid    int
	etimes int
	args   string
}

// processTree builds a parent->children map from a single `ps` snapshot,
// mirroring other_examples/fafe1da4_timvw-pane-patrol's single-call
// technique rather than querying per-pid (O(1) subprocess spawns instead
// of O(N)).
func processTree() (map[int][]procInfo, error) {
	out, err := osexec.Command("ps", "-eo", "pid=,ppid=,etimes=,args=").Output()
	if err != nil {
		return nil, err
	}

	children := make(map[int][]procInfo)
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		pid, err1 := strconv.Atoi(fields[0])
		ppid, err2 := strconv.Atoi(fields[1])
		etimes, err3 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		args := strings.Join(fields[3:], " ")
		children[ppid] = append(children[ppid], procInfo{pid: pid, etimes: etimes, args: args})
	}
	return children, nil
}

// findForegroundProcess descends from pid to the most recently started
// leaf descendant, returning its command line. Returns ("", false) when
// pid has no children (the shell is idle; no foreground command to
// record), matching original_source's find_foreground_process: a leaf
// with no children of its own is itself the answer, while a process with
// no children at all (immediately, at the root) yields no answer.
func findForegroundProcess(children map[int][]procInfo, pid int) (string, bool) {
	kids := children[pid]
	if len(kids) == 0 {
		return "", false
	}

	newest := kids[0]
	for _, k := range kids[1:] {
		if k.etimes < newest.etimes {
			newest = k
		}
	}

	if cmd, ok := findForegroundProcess(children, newest.pid); ok {
		return cmd, true
	}
	return newest.args, true
}
