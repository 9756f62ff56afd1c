package btcrpc_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/dogmatiq/btcrpc"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("type Auth", func() {
	Describe("func NoAuth()", func() {
		It("provides no credentials", func() {
			_, _, ok, err := NoAuth().Credentials()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ok).To(BeFalse())
		})

		It("is equivalent to the zero value", func() {
			Expect(NoAuth()).To(Equal(Auth{}))
		})
	})

	Describe("func UserPass()", func() {
		It("provides the username and password", func() {
			u, p, ok, err := UserPass("<user>", "<pass>").Credentials()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(u).To(Equal("<user>"))
			Expect(p).To(Equal("<pass>"))
		})

		It("provides credentials even if the username and password are empty", func() {
			u, p, ok, err := UserPass("", "").Credentials()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(u).To(BeEmpty())
			Expect(p).To(BeEmpty())
		})
	})

	Describe("func CookieFile()", func() {
		var (
			dir  string
			path string
			now  time.Time
			auth Auth
		)

		BeforeEach(func() {
			var err error
			dir, err = os.MkdirTemp("", "btcrpc-cookie-")
			Expect(err).ShouldNot(HaveOccurred())

			path = filepath.Join(dir, ".cookie")
			now = time.Now()

			auth = CookieFile(path)
			SetCookieClock(auth, func() time.Time { return now })
		})

		AfterEach(func() {
			os.RemoveAll(dir)
		})

		It("provides the credentials from the cookie file", func() {
			err := os.WriteFile(path, []byte("__cookie__:0123abcd\n"), 0600)
			Expect(err).ShouldNot(HaveOccurred())

			u, p, ok, err := auth.Credentials()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(u).To(Equal("__cookie__"))
			Expect(p).To(Equal("0123abcd"))
		})

		It("returns an error if the file does not exist", func() {
			_, _, ok, err := auth.Credentials()
			Expect(err).To(MatchError(os.ErrNotExist))
			Expect(ok).To(BeFalse())
		})

		It("returns an error if the file is malformed", func() {
			err := os.WriteFile(path, []byte("<malformed>"), 0600)
			Expect(err).ShouldNot(HaveOccurred())

			_, _, ok, err := auth.Credentials()
			Expect(err).To(MatchError("malformed cookie file"))
			Expect(ok).To(BeFalse())
		})

		When("the file changes", func() {
			BeforeEach(func() {
				err := os.WriteFile(path, []byte("__cookie__:old"), 0600)
				Expect(err).ShouldNot(HaveOccurred())

				_, p, _, err := auth.Credentials()
				Expect(err).ShouldNot(HaveOccurred())
				Expect(p).To(Equal("old"))

				err = os.WriteFile(path, []byte("__cookie__:new"), 0600)
				Expect(err).ShouldNot(HaveOccurred())

				modTime := time.Now().Add(1 * time.Minute)
				err = os.Chtimes(path, modTime, modTime)
				Expect(err).ShouldNot(HaveOccurred())
			})

			It("continues to use the cached credentials until the check interval elapses", func() {
				now = now.Add(29 * time.Second)

				_, p, _, err := auth.Credentials()
				Expect(err).ShouldNot(HaveOccurred())
				Expect(p).To(Equal("old"))
			})

			It("reads the new credentials after the check interval elapses", func() {
				now = now.Add(30 * time.Second)

				_, p, _, err := auth.Credentials()
				Expect(err).ShouldNot(HaveOccurred())
				Expect(p).To(Equal("new"))
			})
		})
	})
})
