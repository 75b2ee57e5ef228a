package cmd_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/egoavara/spin-hub/cmd"
	"github.com/egoavara/spin-hub/internal/hub"
	"github.com/egoavara/spin-hub/internal/testutil"
)

// testEnv runs commands against an in-process catalog with fake git, spin and prompts
type testEnv struct {
	Server    *httptest.Server
	WorkDir   string
	Config    string
	CacheFile string
	CacheTTL  string // hub.cache_ttl written by WriteConfig
	Runner    *testutil.FakeRunner
	Git       *testutil.FakeGit
	Port      *testutil.ScriptedPort
	Out       bytes.Buffer
	Requests  atomic.Int32
	Status    atomic.Int32 // non-zero makes the catalog fail with this status
}

func newTestEnv(entries []hub.Entry) *testEnv {
	env := &testEnv{
		Runner:   &testutil.FakeRunner{},
		Git:      &testutil.FakeGit{},
		Port:     &testutil.ScriptedPort{},
		CacheTTL: "0s",
	}

	env.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.Requests.Add(1)
		if r.URL.Path != "/api/hub/get_list" {
			http.NotFound(w, r)
			return
		}
		if status := env.Status.Load(); status != 0 {
			w.WriteHeader(int(status))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(entries)
	}))
	DeferCleanup(env.Server.Close)

	root, err := os.MkdirTemp("", "spin-hub-e2e-")
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(os.RemoveAll, root)

	env.WorkDir = filepath.Join(root, "work")
	Expect(os.Mkdir(env.WorkDir, 0755)).To(Succeed())

	env.Config = filepath.Join(root, "config.yaml")
	env.CacheFile = filepath.Join(root, "hub-cache.json")
	env.WriteConfig("/opt/spin/bin/spin")

	return env
}

// WriteConfig points the config at the test catalog with the given spin binary
func (e *testEnv) WriteConfig(spinBin string) {
	content := fmt.Sprintf(`locale: en-US
hub:
  base_url: %s
  cache_ttl: %s
  cache_file: %q
spin:
  version: 2.0.0
  bin_path: %q
`, e.Server.URL, e.CacheTTL, e.CacheFile, spinBin)
	Expect(os.WriteFile(e.Config, []byte(content), 0644)).To(Succeed())
}

// Run executes spin-hub with args and returns the command error
func (e *testEnv) Run(args ...string) error {
	e.Out.Reset()
	app := &cmd.App{
		In:      strings.NewReader(""),
		Out:     &e.Out,
		Err:     &e.Out,
		Runner:  e.Runner,
		Git:     e.Git,
		Port:    e.Port,
		WorkDir: e.WorkDir,
	}
	root := cmd.NewRootCmd(app)
	root.SetArgs(append([]string{"--config", e.Config}, args...))
	return root.Execute()
}

// WorkDirEntries lists the names in the working directory
func (e *testEnv) WorkDirEntries() []string {
	entries, err := os.ReadDir(e.WorkDir)
	Expect(err).NotTo(HaveOccurred())
	names := make([]string, len(entries))
	for i, d := range entries {
		names[i] = d.Name()
	}
	return names
}

// templateRepo simulates cloning a template repository with a zola template
func templateRepo(_, dest, _ string) error {
	testutil.WriteFiles(GinkgoT(), dest, map[string]string{
		"templates/zola/metadata/spin-template.toml": "manifest_version = \"1\"\nid = \"zola-ssg\"\ntags = [\"static\", \"blog\"]\n",
		"templates/zola/content/spin.toml":           "[application]\nname = \"{{project-name | kebab_case}}\"\n",
		"templates/zola/content/content/index.md":    "# {{project-name}}\n",
	})
	return nil
}

// sampleRepo simulates cloning a sample repository
func sampleRepo(_, dest, _ string) error {
	testutil.WriteFiles(GinkgoT(), dest, map[string]string{
		"spin.toml":              "[application]\nname = \"redirect\"\n",
		"samples/echo/spin.toml": "[application]\nname = \"echo\"\n",
	})
	return nil
}
