package git

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/egoavara/spin-hub/internal/process"
	"github.com/egoavara/spin-hub/internal/testutil"
)

func TestCloneDir(t *testing.T) {
	cases := map[string]string{
		"https://example.com/org/my-sample.git": "my-sample",
		"https://github.com/mikkelhegn/redirect": "redirect",
		"https://github.com/org/repo/":           "repo",
		"ssh://git@github.com/org/repo.git":      "repo",
	}
	for repo, want := range cases {
		got, err := CloneDir(repo)
		require.NoError(t, err, repo)
		require.Equal(t, want, got, repo)
	}
}

func TestCloneDir_Failures(t *testing.T) {
	for _, repo := range []string{"https://example.com", "https://example.com/.git", "git@github.com:org/repo.git", "https://x/.."} {
		_, err := CloneDir(repo)
		require.ErrorIs(t, err, ErrNoCloneDir, repo)
	}
}

func TestCloneDir_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[a-z][a-z0-9-]{0,12}`).Draw(t, "name")
		suffix := rapid.SampledFrom([]string{"", ".git"}).Draw(t, "suffix")
		repo := "https://example.com/org/" + name + suffix

		first, err := CloneDir(repo)
		if err != nil {
			t.Fatalf("CloneDir(%q): %v", repo, err)
		}
		second, _ := CloneDir(repo)
		if first != name || second != first {
			t.Fatalf("CloneDir(%q) = %q then %q, want %q", repo, first, second, name)
		}
	})
}

func TestCloneDecoupled(t *testing.T) {
	runner := &testutil.FakeRunner{}
	client := NewClient(runner)

	require.NoError(t, client.CloneDecoupled(context.Background(), "https://example.com/org/x.git", ""))

	calls := runner.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, "git", calls[0].Name)
	require.Equal(t, []string{"clone", "-o", "upstream", "https://example.com/org/x.git"}, calls[0].Args)
	require.Nil(t, calls[0].Stdout, "clone output is forwarded to the terminal")
}

func TestCloneDecoupled_Failure(t *testing.T) {
	runner := &testutil.FakeRunner{Handler: func(process.Command) (process.ExitStatus, error) {
		return process.ExitStatus{Code: 128}, nil
	}}

	err := NewClient(runner).CloneDecoupled(context.Background(), "https://example.com/org/x.git", "dest")
	require.ErrorIs(t, err, ErrCloneFailed)
	require.Equal(t, []string{"clone", "-o", "upstream", "https://example.com/org/x.git", "dest"}, runner.Calls()[0].Args)
}

func TestCloneDecoupled_StartFailure(t *testing.T) {
	startErr := errors.New("no git")
	runner := &testutil.FakeRunner{Handler: func(process.Command) (process.ExitStatus, error) {
		return process.ExitStatus{Code: -1}, startErr
	}}

	err := NewClient(runner).CloneDecoupled(context.Background(), "https://example.com/org/x.git", "")
	require.ErrorIs(t, err, startErr)
}

func TestCloneQuiet(t *testing.T) {
	runner := &testutil.FakeRunner{Handler: func(cmd process.Command) (process.ExitStatus, error) {
		_, _ = io.WriteString(cmd.Stderr, "remote: Permission denied\n")
		return process.ExitStatus{Code: 128}, nil
	}}

	err := NewClient(runner).CloneQuiet(context.Background(), "https://example.com/t.git", "/tmp/x", "spin/templates/v2.0")

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	require.Equal(t, "https://example.com/t.git", authErr.URL)
	require.Equal(t,
		[]string{"clone", "--depth", "1", "--branch", "spin/templates/v2.0", "https://example.com/t.git", "/tmp/x"},
		runner.Calls()[0].Args)
}

func TestCloneQuiet_BranchMissing(t *testing.T) {
	runner := &testutil.FakeRunner{Handler: func(cmd process.Command) (process.ExitStatus, error) {
		_, _ = io.WriteString(cmd.Stderr, "warning: Could not find remote branch spin/templates/v9.9 to clone.\n")
		return process.ExitStatus{Code: 128}, nil
	}}

	err := NewClient(runner).CloneQuiet(context.Background(), "https://example.com/t.git", "/tmp/x", "spin/templates/v9.9")
	require.ErrorIs(t, err, ErrCloneFailed)
	require.Contains(t, err.Error(), "Could not find remote branch")
}

func TestInit(t *testing.T) {
	runner := &testutil.FakeRunner{}
	require.NoError(t, NewClient(runner).Init(context.Background(), "/tmp/app"))

	calls := runner.Calls()
	require.Equal(t, []string{"init", "--quiet"}, calls[0].Args)
	require.Equal(t, "/tmp/app", calls[0].Dir)
}
