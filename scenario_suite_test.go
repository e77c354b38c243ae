package physics_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestScenarios(t *testing.T) {
	gomega.RegisterFailHandler(Fail)
	RunSpecs(t, "physics scenario suite")
}
