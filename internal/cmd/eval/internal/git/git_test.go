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

package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDiffTree(t *testing.T) {
	out := ":100644 100644 1111111111111111111111111111111111111111 2222222222222222222222222222222222222222 M\tREADME.md\n" +
		":000000 100644 0000000000000000000000000000000000000000 3333333333333333333333333333333333333333 A\tdir/new file.go\n" +
		":100644 000000 4444444444444444444444444444444444444444 0000000000000000000000000000000000000000 D\told.go\n"
	got, err := parseDiffTree(out)
	if err != nil {
		t.Fatalf("parseDiffTree(...) failed: %v", err)
	}
	want := []FileChange{
		{Name: "README.md", OldID: "1111111111111111111111111111111111111111", NewID: "2222222222222222222222222222222222222222"},
		{Name: "dir/new file.go", NewID: "3333333333333333333333333333333333333333"},
		{Name: "old.go", OldID: "4444444444444444444444444444444444444444"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseDiffTree(...) result is different [-want,+got]:\n%s", diff)
	}

	for _, bad := range []string{"100644 100644 a b M\tfile\n", ":100644 a b M\tfile\n", ":100644 100644 a b M file\n"} {
		if _, err := parseDiffTree(bad); err == nil {
			t.Errorf("parseDiffTree(%q) succeeded, want error", bad)
		}
	}
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    int
		wantErr bool
	}{
		{name: "blob", header: "abc blob 12\n", want: 12},
		{name: "empty", header: "abc blob 0\n", want: 0},
		{name: "missing", header: "abc missing\n", wantErr: true},
		{name: "tree", header: "abc tree 12\n", wantErr: true},
		{name: "other-id", header: "def blob 12\n", wantErr: true},
		{name: "bad-size", header: "abc blob x\n", wantErr: true},
		{name: "short", header: "abc\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHeader("abc", tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHeader(%q) = %v, want error: %v", tt.header, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseHeader(%q) = %d, want %d", tt.header, got, tt.want)
			}
		})
	}
}

func TestRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found")
	}
	dir := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		if _, err := git(append([]string{"-C", dir}, args...)...); err != nil {
			t.Fatal(err)
		}
	}
	write := func(content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, "file.txt"), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	run("init", "-q")
	run("config", "user.email", "eval@example.com")
	run("config", "user.name", "eval")
	write("a\nb\n")
	run("add", "file.txt")
	run("commit", "-q", "-m", "first")
	write("a\nc\n")
	run("commit", "-q", "-a", "-m", "second")

	repo, err := Open(dir)
	if err != nil {
		t.Fatalf("Open(...) failed: %v", err)
	}
	defer repo.Close()

	commits, err := repo.RevList()
	if err != nil {
		t.Fatalf("RevList() failed: %v", err)
	}
	if len(commits) != 2 {
		t.Fatalf("RevList() = %v, want 2 commits", commits)
	}
	changes, err := repo.Changes(commits[0])
	if err != nil {
		t.Fatalf("Changes(%s) failed: %v", commits[0], err)
	}
	if len(changes) != 1 || changes[0].Name != "file.txt" {
		t.Fatalf("Changes(%s) = %v, want a single change to file.txt", commits[0], changes)
	}
	var got []string
	for _, id := range []string{changes[0].OldID, changes[0].NewID, ""} {
		blob, err := repo.Blob(id)
		if err != nil {
			t.Fatalf("Blob(%s) failed: %v", id, err)
		}
		got = append(got, blob)
	}
	if diff := cmp.Diff([]string{"a\nb\n", "a\nc\n", ""}, got); diff != "" {
		t.Errorf("Blob(...) results are different [-want,+got]:\n%s", diff)
	}
}
