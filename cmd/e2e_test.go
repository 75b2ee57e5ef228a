package cmd_test

import (
	"net/http"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/egoavara/spin-hub/internal/acquire"
	"github.com/egoavara/spin-hub/internal/config"
	"github.com/egoavara/spin-hub/internal/hub"
	"github.com/egoavara/spin-hub/internal/templates"
	"github.com/egoavara/spin-hub/internal/testutil"
)

var catalog = []hub.Entry{
	{
		RawTitle: "Zola SSG", RawSummary: "Build a static site with Zola", RawCategory: "Template",
		RawLanguage: "Rust", RawAuthor: "fermyon", RawTags: []string{"static", "blog"}, Path: "hub/zola",
		Repo: "https://github.com/example/zola-template.git", Template: "zola-ssg",
	},
	{
		RawTitle: "Redirect", RawSummary: "Redirect requests", RawCategory: "Sample",
		RawLanguage: "TinyGo", RawAuthor: "mikkel", RawTags: []string{"http"}, Path: "hub/redirect",
		Repo: "https://github.com/example/redirect.git",
	},
	{
		RawTitle: "Echo", RawSummary: "Echo requests back", RawCategory: "Sample",
		RawLanguage: "Go", RawAuthor: "fermyon", RawTags: []string{"http", "echo"}, Path: "hub/echo",
		Repo: "https://github.com/example/samples.git", Subdir: "samples/echo",
	},
	{
		RawTitle: "Docs Only", RawCategory: "Sample", RawTags: []string{"docs"}, Path: "hub/docs-only",
	},
	{
		RawTitle: "JS2Wasm", RawSummary: "Compile JavaScript to Wasm", RawCategory: "Plugin",
		RawAuthor: "fermyon", RawTags: []string{"javascript"}, Path: "hub/js2wasm",
		Plugin: "js2wasm", PluginLink: "https://example.com/js2wasm.json",
	},
}

var _ = Describe("spin-hub", func() {
	var env *testEnv

	BeforeEach(func() {
		env = newTestEnv(catalog)
	})

	Describe("search", func() {
		It("finds the template by tag and category", func() {
			Expect(env.Run("search", "static", "--cat", "template")).To(Succeed())
			Expect(env.Out.String()).To(ContainSubstring("Zola SSG"))
			Expect(env.Out.String()).NotTo(ContainSubstring("Redirect"))
		})

		It("filters by language alias", func() {
			Expect(env.Run("search", "http", "--lang", "golang")).To(Succeed())
			Expect(env.Out.String()).To(ContainSubstring("Redirect"))
			Expect(env.Out.String()).To(ContainSubstring("Echo"))
		})

		It("reports no matches without side effects", func() {
			Expect(env.Run("search", "nonexistent")).To(Succeed())
			Expect(env.Out.String()).To(ContainSubstring("No matches"))
			Expect(env.Requests.Load()).To(Equal(int32(1)))
			Expect(env.WorkDirEntries()).To(BeEmpty())
			Expect(env.Git.Recorded()).To(BeEmpty())
			Expect(env.Runner.Calls()).To(BeEmpty())
		})

		It("writes json", func() {
			Expect(env.Run("search", "blog", "--format", "json")).To(Succeed())
			Expect(env.Out.String()).To(ContainSubstring(`"title": "Zola SSG"`))
			Expect(env.Out.String()).To(ContainSubstring(env.Server.URL + "/hub/zola"))
		})

		It("reuses the persisted catalog on the next run", func() {
			env.CacheTTL = "1m"
			env.WriteConfig("/opt/spin/bin/spin")

			Expect(env.Run("search", "static")).To(Succeed())
			Expect(env.CacheFile).To(BeAnExistingFile())
			Expect(env.Run("search", "http")).To(Succeed())

			Expect(env.Out.String()).To(ContainSubstring("Redirect"))
			Expect(env.Requests.Load()).To(Equal(int32(1)))
		})

		It("fails when the catalog is unavailable", func() {
			env.Status.Store(http.StatusInternalServerError)
			err := env.Run("search")
			Expect(err).To(MatchError(hub.ErrCatalogFetch))
		})
	})

	Describe("new", func() {
		BeforeEach(func() {
			env.Git.OnClone = templateRepo
		})

		It("scaffolds myblog from the matching template", func() {
			Expect(env.Run("new", "myblog", "-t", "static")).To(Succeed())

			out := filepath.Join(env.WorkDir, "myblog")
			Expect(testutil.ReadFile(GinkgoT(), out, "spin.toml")).To(ContainSubstring(`name = "myblog"`))
			Expect(testutil.ReadFile(GinkgoT(), out, "content/index.md")).To(Equal("# myblog\n"))
			Expect(filepath.Join(out, ".git")).To(BeADirectory())
			Expect(env.Out.String()).To(ContainSubstring("Template Zola SSG"))
			Expect(env.Port.Selects).To(BeEmpty())
		})

		It("refuses to overwrite an existing myblog", func() {
			Expect(os.Mkdir(filepath.Join(env.WorkDir, "myblog"), 0755)).To(Succeed())

			err := env.Run("new", "myblog", "-t", "static")
			Expect(err).To(MatchError(templates.ErrDirectoryExists))
			Expect(env.Git.Recorded()).To(BeEmpty())
		})

		It("skips git init with --no-vcs", func() {
			Expect(env.Run("new", "site", "-t", "blog", "--no-vcs")).To(Succeed())
			Expect(filepath.Join(env.WorkDir, "site", ".git")).NotTo(BeAnExistingFile())
		})

		It("asks for a name when none is given", func() {
			env.Port.Inputs = []string{"  prompted  "}
			Expect(env.Run("new", "-t", "static")).To(Succeed())
			Expect(env.Port.InputAsked).To(HaveLen(1))
			Expect(filepath.Join(env.WorkDir, "prompted")).To(BeADirectory())
		})

		It("reports when no template matches", func() {
			Expect(env.Run("new", "myblog", "-t", "nonexistent")).To(Succeed())
			Expect(env.Out.String()).To(ContainSubstring("No templates match your search terms"))
			Expect(env.WorkDirEntries()).To(BeEmpty())
		})
	})

	Describe("clone", func() {
		BeforeEach(func() {
			env.Git.OnClone = sampleRepo
		})

		It("clones after confirmation with the upstream remote layout", func() {
			env.Port.Confirms = []bool{true}
			Expect(env.Run("clone", "-t", "redirect")).To(Succeed())
			Expect(env.Git.Recorded()).To(Equal([]string{
				"clone https://github.com/example/redirect.git " + filepath.Join(env.WorkDir, "redirect"),
			}))
			Expect(env.Out.String()).To(ContainSubstring("Sample cloned to redirect"))
		})

		It("does nothing when the confirmation is declined", func() {
			env.Port.Confirms = []bool{false}
			Expect(env.Run("clone", "-t", "redirect")).To(Succeed())
			Expect(env.Git.Recorded()).To(BeEmpty())
		})

		It("skips the confirmation with --yes", func() {
			Expect(env.Run("clone", "-t", "redirect", "--yes")).To(Succeed())
			Expect(env.Port.ConfirmAsked).To(BeEmpty())
			Expect(env.Git.Recorded()).To(HaveLen(1))
		})

		It("asks which sample when several match", func() {
			env.Port.Choices = []testutil.Choice{{Index: 1, OK: true}}
			Expect(env.Run("clone", "-t", "http", "-y")).To(Succeed())
			Expect(env.Port.Selects).To(HaveLen(1))
			Expect(env.Port.Selects[0][0]).To(HavePrefix("Echo"))
			Expect(env.Git.Recorded()[0]).To(ContainSubstring("redirect.git"))
		})

		It("stops when the choice is cancelled, even with --yes", func() {
			env.Port.Choices = []testutil.Choice{{OK: false}}
			Expect(env.Run("clone", "-t", "http", "--yes")).To(Succeed())
			Expect(env.Git.Recorded()).To(BeEmpty())
		})

		It("points at the hub page for samples without a repository", func() {
			err := env.Run("clone", "-t", "docs", "--yes")
			Expect(err).To(MatchError(acquire.ErrMissingLocator))
			Expect(err.Error()).To(ContainSubstring(env.Server.URL + "/hub/docs-only"))
		})
	})

	Describe("run", func() {
		BeforeEach(func() {
			env.Git.OnClone = sampleRepo
		})

		It("runs the sample with spin up", func() {
			Expect(env.Run("run", "-t", "redirect", "--yes")).To(Succeed())

			calls := env.Runner.Calls()
			Expect(calls).To(HaveLen(1))
			Expect(calls[0].Name).To(Equal("/opt/spin/bin/spin"))
			Expect(calls[0].Args).To(Equal([]string{"up", "--build", "-f", "spin.toml"}))
			Expect(calls[0].Dir).To(Equal(filepath.Join(env.WorkDir, "redirect")))
		})

		It("extracts the sub-directory and deploys it", func() {
			Expect(env.Run("run", "-t", "echo", "--deploy", "--extract", "--yes")).To(Succeed())

			Expect(env.WorkDirEntries()).To(Equal([]string{"echo"}))
			calls := env.Runner.Calls()
			Expect(calls[0].Args[0]).To(Equal("deploy"))
			Expect(calls[0].Dir).To(Equal(filepath.Join(env.WorkDir, "echo")))
		})

		It("fails without a spin binary", func() {
			env.WriteConfig("")
			if os.Getenv("SPIN_BIN_PATH") != "" {
				Skip("SPIN_BIN_PATH is set in the environment")
			}
			err := env.Run("run", "-t", "redirect", "--yes")
			Expect(err).To(MatchError(config.ErrMissingConfiguration))
			Expect(env.Git.Recorded()).To(BeEmpty())
		})
	})

	Describe("install-plugin", func() {
		It("installs from the manifest URL", func() {
			Expect(env.Run("install-plugin", "-t", "javascript")).To(Succeed())
			Expect(env.Runner.Calls()[0].Args).To(Equal([]string{"plugins", "install", "--url", "https://example.com/js2wasm.json"}))
			Expect(env.Out.String()).To(ContainSubstring("Plugin JS2Wasm installed"))
		})
	})

	Describe("config show", func() {
		It("prints the resolved configuration", func() {
			Expect(env.Run("config", "show")).To(Succeed())
			Expect(env.Out.String()).To(ContainSubstring("base_url: " + env.Server.URL))
			Expect(env.Out.String()).To(ContainSubstring("version: 2.0.0"))
		})
	})

	Describe("version", func() {
		It("prints the version", func() {
			Expect(env.Run("version")).To(Succeed())
			Expect(env.Out.String()).To(HavePrefix("spin-hub "))
		})
	})
})
