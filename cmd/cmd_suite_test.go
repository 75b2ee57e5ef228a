package cmd_test

import (
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/egoavara/spin-hub/internal/i18n"
)

func TestCmd(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Command Suite")
}

var _ = BeforeSuite(func() {
	Expect(i18n.Init(os.DirFS(".."), "en-US")).To(Succeed())
})
