package server_test

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"todolist/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HTTPServer", func() {
	var (
		srv  *server.HTTPServer
		port string
	)

	BeforeEach(func() {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		port = fmt.Sprint(l.Addr().(*net.TCPAddr).Port)
		Expect(l.Close()).To(Succeed())

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "ok")
		})
		srv = server.NewHTTP(zap.NewNop().Sugar(), handler, port)
	})

	It("should serve until shut down", func() {
		errChan := srv.Run()

		Eventually(func() (string, error) {
			resp, err := http.Get("http://127.0.0.1:" + port + "/")
			if err != nil {
				return "", err
			}
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			return string(body), err
		}).WithTimeout(5 * time.Second).Should(Equal("ok"))

		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})
})
