// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package git reads commits and blobs from a local repository for evaluations.
package git

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// zeroID is the object id git reports for the missing side of added and deleted files.
const zeroID = "0000000000000000000000000000000000000000"

// Repo is a git repository. It's safe for concurrent use.
type Repo struct {
	dir string

	mu  sync.Mutex // guards cmd, in, and out
	cmd *exec.Cmd
	in  io.WriteCloser
	out *bufio.Reader
}

// Open opens the repository in dir and starts a "git cat-file" process to read blobs.
func Open(dir string) (*Repo, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	cmd := exec.Command("git", "-C", dir, "cat-file", "--batch")
	in, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("connecting stdin: %v", err)
	}
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("connecting stdout: %v", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting git cat-file: %v", err)
	}
	return &Repo{dir: dir, cmd: cmd, in: in, out: bufio.NewReader(out)}, nil
}

// Close stops the git cat-file process.
func (r *Repo) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.in.Close(); err != nil {
		return err
	}
	return r.cmd.Wait()
}

// RevList returns the ids of all non-merge commits reachable from HEAD, newest first.
func (r *Repo) RevList() ([]string, error) {
	out, err := git("-C", r.dir, "rev-list", "--no-merges", "HEAD")
	if err != nil {
		return nil, err
	}
	return strings.Fields(out), nil
}

// FileChange is a file modified by a commit.
type FileChange struct {
	Name  string
	OldID string // empty if the file was added
	NewID string // empty if the file was deleted
}

// Changes returns the files modified by commit, compared to its first parent.
func (r *Repo) Changes(commit string) ([]FileChange, error) {
	out, err := git("-C", r.dir, "diff-tree", "-r", "--no-commit-id", commit)
	if err != nil {
		return nil, err
	}
	return parseDiffTree(out)
}

// parseDiffTree parses the raw output of git diff-tree, for example
//
//	:100644 100644 bcd1234 0123456 M	file0
func parseDiffTree(out string) ([]FileChange, error) {
	var ret []FileChange
	for line := range strings.Lines(out) {
		line = strings.TrimSuffix(line, "\n")
		if line == "" {
			continue
		}
		meta, name, ok := strings.Cut(line, "\t")
		if !ok || !strings.HasPrefix(meta, ":") {
			return nil, fmt.Errorf("malformed diff-tree line: %q", line)
		}
		fields := strings.Fields(meta[1:])
		if len(fields) != 5 {
			return nil, fmt.Errorf("malformed diff-tree line: %q", line)
		}
		fc := FileChange{Name: name, OldID: fields[2], NewID: fields[3]}
		if fc.OldID == zeroID {
			fc.OldID = ""
		}
		if fc.NewID == zeroID {
			fc.NewID = ""
		}
		ret = append(ret, fc)
	}
	return ret, nil
}

// Blob returns the contents of the blob with the given id. The empty id is the empty blob.
func (r *Repo) Blob(id string) (string, error) {
	if id == "" {
		return "", nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := fmt.Fprintf(r.in, "%s\n", id); err != nil {
		return "", fmt.Errorf("requesting blob %s: %v", id, err)
	}
	header, err := r.out.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading blob %s: %v", id, err)
	}
	size, err := parseHeader(id, header)
	if err != nil {
		return "", err
	}
	buf := make([]byte, size+1) // contents are followed by a newline
	if _, err := io.ReadFull(r.out, buf); err != nil {
		return "", fmt.Errorf("reading blob %s: %v", id, err)
	}
	return string(buf[:size]), nil
}

// parseHeader parses the "<id> <type> <size>" line git cat-file --batch prints before every
// object and returns the size.
func parseHeader(id, header string) (int, error) {
	fields := strings.Fields(header)
	if len(fields) == 2 && fields[1] == "missing" {
		return 0, fmt.Errorf("blob %s is missing", id)
	}
	if len(fields) != 3 {
		return 0, fmt.Errorf("found %d fields, expected 3: %q", len(fields), header)
	}
	if fields[0] != id {
		return 0, fmt.Errorf("ids don't match %s vs %s", fields[0], id)
	}
	if fields[1] != "blob" {
		return 0, fmt.Errorf("%s is a %s, not a blob", id, fields[1])
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, fmt.Errorf("invalid size in %q: %v", header, err)
	}
	if n < 0 {
		return 0, errors.New("negative blob size")
	}
	return n, nil
}

func git(args ...string) (string, error) {
	var wout, werr strings.Builder
	cmd := exec.Command("git", args...)
	cmd.Stdout = &wout
	cmd.Stderr = &werr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running git command %v: %v\n%s", cmd, err, werr.String())
	}
	return wout.String(), nil
}
