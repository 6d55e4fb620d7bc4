package handler_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"todolist/internal/core"
	"todolist/internal/http/handler"
	"todolist/internal/http/handler/fake"
	mwfake "todolist/internal/http/handler/middleware/fake"
	"todolist/internal/http/payload"
	"todolist/internal/session"
	"todolist/internal/view"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("TodoHandler", func() {
	var (
		router       http.Handler
		fakeService  *fake.TodoService
		fakeSessions *fake.SessionStore
		fakeRenderer *fake.Renderer
		fakeLoader   *mwfake.SessionStore
		fakeLogger   *zap.SugaredLogger
		sess         *session.Session
		fakeErr      error
		dueDate      time.Time
	)

	do := func(method, target string, form url.Values) *httptest.ResponseRecorder {
		var body io.Reader
		if form != nil {
			body = strings.NewReader(form.Encode())
		}
		req := httptest.NewRequest(method, target, body)
		if form != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	loggedInAs := func(userID string) {
		sess = session.New("sess-" + userID)
		sess.SetUserID(userID)
		fakeLoader.LoadReturns(sess, nil)
	}

	todoForm := func() url.Values {
		return url.Values{
			"title":       {"Buy milk"},
			"description": {"two liters"},
			"dueDate":     {"2024-01-01"},
		}
	}

	BeforeEach(func() {
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.TodoService)
		fakeSessions = new(fake.SessionStore)
		fakeRenderer = new(fake.Renderer)
		fakeLoader = new(mwfake.SessionStore)
		fakeErr = errors.New("fake-error")
		dueDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		fakeRenderer.RenderStub = func(w io.Writer, name string, page view.Page) error {
			_, err := io.WriteString(w, "page:"+name)
			return err
		}

		sess = session.New("anonymous")
		fakeLoader.LoadReturns(sess, nil)

		h := handler.NewTodoHandler(fakeLogger, payload.DecodeValidator{}, fakeService, fakeSessions, fakeRenderer)
		router = handler.NewRouter(fakeLogger, h, fakeLoader)
	})

	Describe("authorization gate", func() {
		It("should reject every todo route before touching the store", func() {
			routes := []struct{ method, path string }{
				{http.MethodGet, "/todo"},
				{http.MethodGet, "/todo/new"},
				{http.MethodPost, "/todo"},
				{http.MethodGet, "/todo/t1"},
				{http.MethodGet, "/todo/t1/edit"},
				{http.MethodPost, "/todo/t1/edit"},
				{http.MethodPost, "/todo/t1/complete"},
				{http.MethodPost, "/todo/t1/incomplete"},
				{http.MethodDelete, "/todo/t1"},
			}

			for _, rt := range routes {
				w := do(rt.method, rt.path, todoForm())
				Expect(w.Body.String()).To(Equal("Not logged in"), rt.method+" "+rt.path)
				Expect(w.Code).To(Equal(http.StatusOK))
			}

			Expect(fakeService.ListTodosCallCount()).To(BeZero())
			Expect(fakeService.CreateTodoCallCount()).To(BeZero())
			Expect(fakeService.GetTodoCallCount()).To(BeZero())
			Expect(fakeService.UpdateTodoCallCount()).To(BeZero())
			Expect(fakeService.SetCompletedCallCount()).To(BeZero())
			Expect(fakeService.DeleteTodoCallCount()).To(BeZero())
			Expect(fakeRenderer.RenderCallCount()).To(BeZero())
		})

		It("should leave the public pages open", func() {
			Expect(do(http.MethodGet, "/login", nil).Body.String()).To(Equal("page:login"))
			Expect(do(http.MethodGet, "/register", nil).Body.String()).To(Equal("page:register"))
		})
	})

	Describe("GET /", func() {
		It("should redirect to the list", func() {
			w := do(http.MethodGet, "/", nil)
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/todo"))
		})
	})

	Describe("POST /register", func() {
		When("the form is complete", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns("user-a", nil)
			})

			It("should establish a session and let the user into the list", func() {
				w := do(http.MethodPost, "/register", url.Values{"username": {"alice"}, "password": {"pw"}})
				Expect(w.Code).To(Equal(http.StatusFound))
				Expect(w.Header().Get("Location")).To(Equal("/todo"))

				_, msg := fakeService.RegisterArgsForCall(0)
				Expect(msg).To(Equal(core.AuthMessage{Username: "alice", Password: "pw"}))
				Expect(sess.UserID()).To(Equal("user-a"))
				Expect(fakeSessions.SaveCallCount()).To(Equal(1))

				w = do(http.MethodGet, "/todo", nil)
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(Equal("page:todo"))
				_, owner := fakeService.ListTodosArgsForCall(0)
				Expect(owner).To(Equal("user-a"))
			})
		})

		When("the password is missing", func() {
			It("should answer 400 without registering", func() {
				w := do(http.MethodPost, "/register", url.Values{"username": {"alice"}})
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.RegisterCallCount()).To(BeZero())
			})
		})

		When("the password is longer than bcrypt accepts", func() {
			It("should answer 400 without registering", func() {
				w := do(http.MethodPost, "/register", url.Values{
					"username": {"alice"},
					"password": {strings.Repeat("x", 73)},
				})
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("at most 72 bytes"))
				Expect(fakeService.RegisterCallCount()).To(BeZero())
				Expect(sess.UserID()).To(BeEmpty())
			})
		})

		When("the store rejects the user", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns("", fakeErr)
			})

			It("should answer 500 and leave the session anonymous", func() {
				w := do(http.MethodPost, "/register", url.Values{"username": {"alice"}, "password": {"pw"}})
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(sess.UserID()).To(BeEmpty())
				Expect(fakeSessions.SaveCallCount()).To(BeZero())
			})
		})

		When("the session cannot be saved", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns("user-a", nil)
				fakeSessions.SaveReturns(fakeErr)
			})

			It("should answer 500", func() {
				w := do(http.MethodPost, "/register", url.Values{"username": {"alice"}, "password": {"pw"}})
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("POST /login", func() {
		var creds url.Values

		BeforeEach(func() {
			creds = url.Values{"username": {"alice"}, "password": {"pw"}}
		})

		It("should log a valid user in", func() {
			fakeService.AuthenticateReturns("user-a", nil)
			w := do(http.MethodPost, "/login", creds)
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/todo"))
			Expect(sess.UserID()).To(Equal("user-a"))
		})

		It("should answer unknown users and wrong passwords identically", func() {
			fakeService.AuthenticateReturns("", core.ErrUserNotFound)
			unknown := do(http.MethodPost, "/login", creds)

			fakeService.AuthenticateReturns("", core.ErrIncorrectPassword)
			wrong := do(http.MethodPost, "/login", creds)

			Expect(unknown.Code).To(Equal(http.StatusBadRequest))
			Expect(wrong.Code).To(Equal(unknown.Code))
			Expect(wrong.Body.String()).To(Equal(unknown.Body.String()))
			Expect(unknown.Body.String()).To(Equal("Invalid Login,Please Try Again"))
			Expect(sess.UserID()).To(BeEmpty())
		})

		It("should give an empty form the same answer", func() {
			w := do(http.MethodPost, "/login", url.Values{})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(Equal("Invalid Login,Please Try Again"))
			Expect(fakeService.AuthenticateCallCount()).To(BeZero())
		})

		It("should answer 500 when the lookup fails", func() {
			fakeService.AuthenticateReturns("", fakeErr)
			w := do(http.MethodPost, "/login", creds)
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("POST /logout", func() {
		BeforeEach(func() {
			loggedInAs("user-a")
		})

		It("should destroy the session and go to the login page", func() {
			w := do(http.MethodPost, "/logout", nil)
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/login"))
			Expect(fakeSessions.DestroyCallCount()).To(Equal(1))
			_, _, destroyed := fakeSessions.DestroyArgsForCall(0)
			Expect(destroyed).To(BeIdenticalTo(sess))
		})

		It("should still redirect when the store fails", func() {
			fakeSessions.DestroyReturns(fakeErr)
			w := do(http.MethodPost, "/logout", nil)
			Expect(w.Code).To(Equal(http.StatusFound))
		})
	})

	Describe("with a logged in user", func() {
		BeforeEach(func() {
			loggedInAs("user-a")
		})

		Describe("GET /todo", func() {
			It("should render the user's todos", func() {
				todos := []core.TodoRecord{{ID: "t1", Title: "Buy milk", DueDate: dueDate, UserID: "user-a"}}
				fakeService.ListTodosReturns(todos, nil)

				w := do(http.MethodGet, "/todo", nil)
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Header().Get("Content-Type")).To(HavePrefix("text/html"))
				_, name, page := fakeRenderer.RenderArgsForCall(0)
				Expect(name).To(Equal(view.Todos))
				Expect(page.Todos).To(Equal(todos))
				Expect(page.LoggedIn).To(BeTrue())
			})

			It("should show queued flash messages exactly once", func() {
				sess.AddFlash("Todo Saved")

				do(http.MethodGet, "/todo", nil)
				_, _, first := fakeRenderer.RenderArgsForCall(0)
				Expect(first.Messages).To(Equal([]string{"Todo Saved"}))
				Expect(fakeSessions.SaveCallCount()).To(Equal(1))

				do(http.MethodGet, "/todo", nil)
				_, _, second := fakeRenderer.RenderArgsForCall(1)
				Expect(second.Messages).To(BeEmpty())
			})

			It("should answer 500 when the store fails", func() {
				fakeService.ListTodosReturns(nil, fakeErr)
				w := do(http.MethodGet, "/todo", nil)
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(fakeRenderer.RenderCallCount()).To(BeZero())
			})

			It("should answer 500 when rendering fails", func() {
				fakeRenderer.RenderStub = nil
				fakeRenderer.RenderReturns(fakeErr)
				w := do(http.MethodGet, "/todo", nil)
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})

		Describe("GET /todo/new", func() {
			It("should render the form", func() {
				w := do(http.MethodGet, "/todo/new", nil)
				Expect(w.Body.String()).To(Equal("page:newTodo"))
				Expect(fakeService.GetTodoCallCount()).To(BeZero())
			})
		})

		Describe("POST /todo", func() {
			It("should create the todo for the session user and queue a flash", func() {
				fakeService.CreateTodoReturns(core.TodoRecord{ID: "t1"}, nil)

				w := do(http.MethodPost, "/todo", todoForm())
				Expect(w.Code).To(Equal(http.StatusFound))
				Expect(w.Header().Get("Location")).To(Equal("/todo"))

				_, owner, msg := fakeService.CreateTodoArgsForCall(0)
				Expect(owner).To(Equal("user-a"))
				Expect(msg.Title).To(Equal("Buy milk"))
				Expect(msg.Description).To(Equal("two liters"))
				Expect(msg.DueDate).To(Equal(dueDate))

				Expect(fakeSessions.SaveCallCount()).To(Equal(1))
				Expect(sess.Flashes()).To(Equal([]string{"Todo Saved"}))
			})

			It("should reject a malformed date before the store", func() {
				form := todoForm()
				form.Set("dueDate", "tomorrow")
				w := do(http.MethodPost, "/todo", form)
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.CreateTodoCallCount()).To(BeZero())
			})

			It("should answer 500 when the store fails", func() {
				fakeService.CreateTodoReturns(core.TodoRecord{}, fakeErr)
				w := do(http.MethodPost, "/todo", todoForm())
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(Equal("Error creating a new todo"))
				Expect(sess.Flashes()).To(BeEmpty())
			})
		})

		Describe("GET /todo/{id}", func() {
			It("should render the todo", func() {
				fakeService.GetTodoReturns(core.TodoRecord{ID: "t1", Title: "Buy milk", DueDate: dueDate}, nil)

				w := do(http.MethodGet, "/todo/t1", nil)
				Expect(w.Code).To(Equal(http.StatusOK))
				_, id := fakeService.GetTodoArgsForCall(0)
				Expect(id).To(Equal("t1"))
				_, name, page := fakeRenderer.RenderArgsForCall(0)
				Expect(name).To(Equal(view.Show))
				Expect(page.Todo.Title).To(Equal("Buy milk"))
			})

			It("should answer 404 for an unknown id", func() {
				fakeService.GetTodoReturns(core.TodoRecord{}, core.ErrTodoNotFound)
				w := do(http.MethodGet, "/todo/nope", nil)
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(w.Body.String()).To(Equal("Todo not found"))
				Expect(w.Header().Get("Content-Type")).To(HavePrefix("text/plain"))
			})

			It("should answer 500 when the store fails", func() {
				fakeService.GetTodoReturns(core.TodoRecord{}, fakeErr)
				w := do(http.MethodGet, "/todo/t1", nil)
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})

		Describe("GET /todo/{id}/edit", func() {
			It("should render the edit form", func() {
				fakeService.GetTodoReturns(core.TodoRecord{ID: "t1"}, nil)
				w := do(http.MethodGet, "/todo/t1/edit", nil)
				Expect(w.Body.String()).To(Equal("page:edit"))
			})

			It("should answer 404 for an unknown id", func() {
				fakeService.GetTodoReturns(core.TodoRecord{}, core.ErrTodoNotFound)
				w := do(http.MethodGet, "/todo/nope/edit", nil)
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		Describe("POST /todo/{id}/edit", func() {
			It("should overwrite every field including completed", func() {
				form := todoForm()
				form.Set("completed", "on")

				w := do(http.MethodPost, "/todo/t1/edit", form)
				Expect(w.Code).To(Equal(http.StatusFound))
				_, id, msg := fakeService.UpdateTodoArgsForCall(0)
				Expect(id).To(Equal("t1"))
				Expect(msg).To(Equal(core.TodoMessage{
					Title: "Buy milk", Description: "two liters", DueDate: dueDate, Completed: true,
				}))
			})

			It("should treat a missing checkbox as pending", func() {
				do(http.MethodPost, "/todo/t1/edit", todoForm())
				_, _, msg := fakeService.UpdateTodoArgsForCall(0)
				Expect(msg.Completed).To(BeFalse())
			})

			It("should answer 404 for an unknown id", func() {
				fakeService.UpdateTodoReturns(core.ErrTodoNotFound)
				w := do(http.MethodPost, "/todo/nope/edit", todoForm())
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		Describe("complete and incomplete", func() {
			It("should flip only the completed flag", func() {
				Expect(do(http.MethodPost, "/todo/t1/complete", nil).Code).To(Equal(http.StatusFound))
				Expect(do(http.MethodPost, "/todo/t1/incomplete", nil).Code).To(Equal(http.StatusFound))

				Expect(fakeService.SetCompletedCallCount()).To(Equal(2))
				_, id, completed := fakeService.SetCompletedArgsForCall(0)
				Expect(id).To(Equal("t1"))
				Expect(completed).To(BeTrue())
				_, _, completed = fakeService.SetCompletedArgsForCall(1)
				Expect(completed).To(BeFalse())
				Expect(fakeService.UpdateTodoCallCount()).To(BeZero())
			})

			It("should answer 404 for an unknown id", func() {
				fakeService.SetCompletedReturns(core.ErrTodoNotFound)
				w := do(http.MethodPost, "/todo/nope/complete", nil)
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		Describe("DELETE /todo/{id}", func() {
			It("should delete and queue a flash", func() {
				w := do(http.MethodDelete, "/todo/t1", nil)
				Expect(w.Code).To(Equal(http.StatusFound))
				_, id := fakeService.DeleteTodoArgsForCall(0)
				Expect(id).To(Equal("t1"))
				Expect(sess.Flashes()).To(Equal([]string{"Todo deleted"}))
			})

			It("should be reachable from an HTML form", func() {
				w := do(http.MethodPost, "/todo/t1?_method=DELETE", url.Values{})
				Expect(w.Code).To(Equal(http.StatusFound))
				Expect(fakeService.DeleteTodoCallCount()).To(Equal(1))
			})

			It("should make a later lookup answer 404", func() {
				do(http.MethodDelete, "/todo/t1", nil)
				fakeService.GetTodoReturns(core.TodoRecord{}, core.ErrTodoNotFound)
				w := do(http.MethodGet, "/todo/t1", nil)
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})

			It("should answer 500 with the reason when the store fails", func() {
				fakeService.DeleteTodoReturns(fakeErr)
				w := do(http.MethodDelete, "/todo/t1", nil)
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(Equal("Error Deleting To-Do: fake-error"))
			})
		})
	})

	Describe("records of other users", func() {
		BeforeEach(func() {
			loggedInAs("user-b")
		})

		// Ownership is not enforced: any logged in user may change any todo by id.
		It("should let another user edit and delete a todo", func() {
			Expect(do(http.MethodPost, "/todo/todo-of-a/edit", todoForm()).Code).To(Equal(http.StatusFound))
			Expect(do(http.MethodDelete, "/todo/todo-of-a", nil).Code).To(Equal(http.StatusFound))

			_, id, _ := fakeService.UpdateTodoArgsForCall(0)
			Expect(id).To(Equal("todo-of-a"))
			_, id = fakeService.DeleteTodoArgsForCall(0)
			Expect(id).To(Equal("todo-of-a"))
		})
	})
})
