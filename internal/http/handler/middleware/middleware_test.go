package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"todolist/internal/http/handler/middleware"
	"todolist/internal/http/handler/middleware/fake"
	"todolist/internal/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Middleware", func() {
	var (
		fakeLogger *zap.SugaredLogger
		w          *httptest.ResponseRecorder
		req        *http.Request
		nextCalls  int
		seen       *http.Request
		next       http.Handler
	)

	BeforeEach(func() {
		fakeLogger = zap.NewNop().Sugar()
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/todo", nil)
		nextCalls = 0
		seen = nil
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalls++
			seen = r
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		It("should generate an id when none is sent", func() {
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)
			id := middleware.GetRequestID(seen.Context())
			Expect(id).NotTo(BeEmpty())
			Expect(w.Header().Get("X-Request-ID")).To(Equal(id))
		})

		It("should keep an incoming id", func() {
			req.Header.Set("X-Request-ID", "abc")
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)
			Expect(middleware.GetRequestID(seen.Context())).To(Equal("abc"))
		})
	})

	Describe("Logging", func() {
		It("should pass the response through", func() {
			middleware.NewLoggingMiddleware(fakeLogger).Logging(next).ServeHTTP(w, req)
			Expect(nextCalls).To(Equal(1))
			Expect(w.Code).To(Equal(http.StatusTeapot))
		})
	})

	Describe("MethodOverride", func() {
		It("should turn a POST with _method=DELETE in the query into a DELETE", func() {
			req = httptest.NewRequest(http.MethodPost, "/todo/1?_method=DELETE", nil)
			middleware.MethodOverride(next).ServeHTTP(w, req)
			Expect(seen.Method).To(Equal(http.MethodDelete))
		})

		It("should read the override from the form body", func() {
			body := url.Values{"_method": {"delete"}}.Encode()
			req = httptest.NewRequest(http.MethodPost, "/todo/1", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			middleware.MethodOverride(next).ServeHTTP(w, req)
			Expect(seen.Method).To(Equal(http.MethodDelete))
		})

		It("should ignore unsupported methods", func() {
			req = httptest.NewRequest(http.MethodPost, "/todo/1?_method=GET", nil)
			middleware.MethodOverride(next).ServeHTTP(w, req)
			Expect(seen.Method).To(Equal(http.MethodPost))
		})

		It("should leave GET requests alone", func() {
			req = httptest.NewRequest(http.MethodGet, "/todo/1?_method=DELETE", nil)
			middleware.MethodOverride(next).ServeHTTP(w, req)
			Expect(seen.Method).To(Equal(http.MethodGet))
		})
	})

	Describe("Session", func() {
		var (
			fakeStore *fake.SessionStore
			sess      *session.Session
		)

		BeforeEach(func() {
			fakeStore = new(fake.SessionStore)
			sess = session.New("sess-1")
			sess.SetUserID("user-1")
			fakeStore.LoadReturns(sess, nil)
		})

		JustBeforeEach(func() {
			middleware.NewSessionMiddleware(fakeLogger, fakeStore).Session(next).ServeHTTP(w, req)
		})

		It("should attach the session to the request context", func() {
			got, ok := session.FromContext(seen.Context())
			Expect(ok).To(BeTrue())
			Expect(got).To(BeIdenticalTo(sess))
			Expect(fakeStore.SaveCallCount()).To(Equal(0))
		})

		When("the session is due for a touch", func() {
			BeforeEach(func() {
				fakeStore.NeedsTouchReturns(true)
			})

			It("should save it before continuing", func() {
				Expect(fakeStore.SaveCallCount()).To(Equal(1))
				_, _, saved := fakeStore.SaveArgsForCall(0)
				Expect(saved).To(BeIdenticalTo(sess))
				Expect(nextCalls).To(Equal(1))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeStore.LoadReturns(session.New("fresh"), errors.New("redis down"))
			})

			It("should continue with the fresh session", func() {
				Expect(nextCalls).To(Equal(1))
				Expect(session.UserIDFromContext(seen.Context())).To(BeEmpty())
			})
		})
	})

	Describe("RequireLogin", func() {
		var gate http.Handler

		BeforeEach(func() {
			gate = middleware.NewAuthMiddleware(fakeLogger).RequireLogin(next)
		})

		When("the session has a user", func() {
			It("should call the next handler", func() {
				sess := session.New("sess-1")
				sess.SetUserID("user-1")
				req = req.WithContext(session.NewContext(req.Context(), sess))

				gate.ServeHTTP(w, req)
				Expect(nextCalls).To(Equal(1))
				Expect(w.Code).To(Equal(http.StatusTeapot))
			})
		})

		When("the session is anonymous", func() {
			It("should deny with a plain message", func() {
				req = req.WithContext(session.NewContext(req.Context(), session.New("sess-1")))

				gate.ServeHTTP(w, req)
				Expect(nextCalls).To(Equal(0))
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(Equal("Not logged in"))
			})
		})

		When("there is no session at all", func() {
			It("should deny", func() {
				gate.ServeHTTP(w, req)
				Expect(nextCalls).To(Equal(0))
				Expect(w.Body.String()).To(Equal("Not logged in"))
			})
		})
	})
})
