package repository_test

import (
	"context"
	"errors"
	"time"

	"todolist/internal/db"
	"todolist/internal/repository"
	"todolist/internal/repository/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TodoRepository", func() {
	var (
		repo        *repository.TodoRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewTodoRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.Migrate()
		})

		When("migration succeeds", func() {
			It("should migrate the user and todo tables", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Todo{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.CreateUser(ctx, "alice", "hash")
		})

		When("the insert succeeds", func() {
			It("should return the user with a generated id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(uuid.Validate(user.ID)).To(Succeed())
				Expect(user.Username).To(Equal("alice"))
				Expect(user.PasswordHash).To(Equal("hash"))

				Expect(fakeStorage.CreateCallCount()).To(Equal(1))
				_, record := fakeStorage.CreateArgsForCall(0)
				Expect(record).To(Equal(&user))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).To(MatchError(ContainSubstring("create user")))
			})
		})
	})

	Describe("GetUserFromDB", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserFromDB(ctx, "alice")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					u := entity.(*repository.User)
					u.ID = "user-1"
					u.Username = value.(string)
					return nil
				}
			})

			It("should look it up by username", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal("user-1"))
				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("username"))
				Expect(value).To(Equal("alice"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("CreateTodo", func() {
		var (
			todo   repository.Todo
			err    error
			fields repository.TodoFields
		)

		BeforeEach(func() {
			fields = repository.TodoFields{
				Title:       "Buy milk",
				Description: "two liters",
				DueDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				Completed:   true,
			}
		})

		JustBeforeEach(func() {
			todo, err = repo.CreateTodo(ctx, "user-1", fields)
		})

		It("should store a pending todo owned by the user", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(uuid.Validate(todo.ID)).To(Succeed())
			Expect(todo.Title).To(Equal("Buy milk"))
			Expect(todo.UserID).To(Equal("user-1"))
			Expect(todo.Completed).To(BeFalse())
			Expect(fakeStorage.CreateCallCount()).To(Equal(1))
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError(ContainSubstring("create todo")))
			})
		})
	})

	Describe("GetUserTodos", func() {
		var (
			todos []repository.Todo
			err   error
		)

		JustBeforeEach(func() {
			todos, err = repo.GetUserTodos(ctx, "user-1")
		})

		When("the user has todos", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(_ context.Context, column string, value any, order string, entity any) error {
					list := entity.(*[]repository.Todo)
					*list = append(*list, repository.Todo{ID: "t1"}, repository.Todo{ID: "t2"})
					return nil
				}
			})

			It("should filter by owner", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(todos).To(HaveLen(2))
				_, column, value, _, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(column).To(Equal("user_id"))
				Expect(value).To(Equal("user-1"))
			})

			It("should list them in creation order", func() {
				Expect(err).NotTo(HaveOccurred())
				_, _, _, order, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(order).To(Equal("created_at, id"))
				Expect(todos[0].ID).To(Equal("t1"))
				Expect(todos[1].ID).To(Equal("t2"))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(todos).To(BeNil())
			})
		})
	})

	Describe("GetTodo", func() {
		var err error

		JustBeforeEach(func() {
			_, err = repo.GetTodo(ctx, "t1")
		})

		When("the todo is missing", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrTodoNotFound", func() {
				Expect(err).To(MatchError(repository.ErrTodoNotFound))
			})
		})

		When("the todo exists", func() {
			It("should look it up by id", func() {
				Expect(err).NotTo(HaveOccurred())
				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("id"))
				Expect(value).To(Equal("t1"))
			})
		})
	})

	Describe("UpdateTodo", func() {
		var (
			err    error
			due    time.Time
			fields repository.TodoFields
		)

		BeforeEach(func() {
			due = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
			fields = repository.TodoFields{Title: "t", Description: "d", DueDate: due, Completed: false}
		})

		JustBeforeEach(func() {
			err = repo.UpdateTodo(ctx, "t1", fields)
		})

		It("should overwrite every editable column", func() {
			Expect(err).NotTo(HaveOccurred())
			_, model, column, value, updates := fakeStorage.UpdateByArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.Todo{}))
			Expect(column).To(Equal("id"))
			Expect(value).To(Equal("t1"))
			Expect(updates).To(Equal(map[string]any{
				"title":       "t",
				"description": "d",
				"due_date":    due,
				"completed":   false,
			}))
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateByReturns(db.ErrNotFound)
			})

			It("should return ErrTodoNotFound", func() {
				Expect(err).To(MatchError(repository.ErrTodoNotFound))
			})
		})
	})

	Describe("SetTodoCompleted", func() {
		It("should only touch the completed column", func() {
			Expect(repo.SetTodoCompleted(ctx, "t1", true)).To(Succeed())
			_, _, _, _, updates := fakeStorage.UpdateByArgsForCall(0)
			Expect(updates).To(Equal(map[string]any{"completed": true}))
		})

		It("should surface storage failures", func() {
			fakeStorage.UpdateByReturns(fakeErr)
			err := repo.SetTodoCompleted(ctx, "t1", false)
			Expect(err).To(MatchError(fakeErr))
			Expect(err).NotTo(MatchError(repository.ErrTodoNotFound))
		})
	})

	Describe("DeleteTodo", func() {
		It("should report whether a row was removed", func() {
			fakeStorage.DeleteByReturns(1, nil)
			deleted, err := repo.DeleteTodo(ctx, "t1")
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeTrue())

			fakeStorage.DeleteByReturns(0, nil)
			deleted, err = repo.DeleteTodo(ctx, "t1")
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeFalse())
		})

		It("should wrap storage failures", func() {
			fakeStorage.DeleteByReturns(0, fakeErr)
			_, err := repo.DeleteTodo(ctx, "t1")
			Expect(err).To(MatchError(ContainSubstring("delete todo")))
		})
	})
})
