package jwt_test

import (
	"time"

	tokenIssuer "todolist/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			Subject:    "session-1",
			Audience:   "session",
			Expiration: time.Hour,
		}
		DeferCleanup(func() {
			tokenIssuer.TimeNow = time.Now
		})
	})

	It("should round trip the subject", func() {
		token, err := service.Issue(info)
		Expect(err).NotTo(HaveOccurred())

		sub, err := service.ValidateSubject(token, "session")
		Expect(err).NotTo(HaveOccurred())
		Expect(sub).To(Equal("session-1"))
	})

	It("should sign with HS512", func() {
		token := service.Generate(info)
		Expect(token.Method).To(Equal(jwt.SigningMethodHS512))
		claims := token.Claims.(jwt.MapClaims)
		Expect(claims["sub"]).To(Equal("session-1"))
		Expect(claims["aud"]).To(Equal("session"))
	})

	It("should reject a token signed with another secret", func() {
		token, err := tokenIssuer.NewJWTService([]byte("other")).Issue(info)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(token)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject a different audience", func() {
		token, err := service.Issue(info)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.ValidateSubject(token, "api")
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject an expired token", func() {
		token, err := service.Issue(info)
		Expect(err).NotTo(HaveOccurred())

		tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err = service.Validate(token)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
	})

	It("should reject garbage", func() {
		_, err := service.ValidateSubject("not-a-token", "")
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})
})
