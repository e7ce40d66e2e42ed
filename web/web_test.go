package web_test

import (
	"io/fs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"playground/web"
)

var _ = Describe("Client", func() {
	var (
		client fs.FS
		err    error
	)

	BeforeEach(func() {
		client, err = web.Client()
		Expect(err).NotTo(HaveOccurred())
	})

	It("serves the entry page from the embedded root", func() {
		data, err := fs.ReadFile(client, "index.html")
		Expect(err).NotTo(HaveOccurred())
		Expect(data).NotTo(BeEmpty())
	})

	// The token carries the user id in the subject claim; the page must read it
	// from there or the ownership check against game authors silently fails.
	It("derives the signed-in user id from the token subject claim", func() {
		data, err := fs.ReadFile(client, "index.html")
		Expect(err).NotTo(HaveOccurred())

		page := string(data)
		Expect(page).To(ContainSubstring("claims.sub"))
		Expect(page).To(ContainSubstring("g.author.id === user.id"))
	})
})
