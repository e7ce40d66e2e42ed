package core_test

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"playground/internal/core"
	"playground/internal/core/fake"
	"playground/internal/repository"
	tokenIssuer "playground/pkg/jwt"
)

var _ = Describe("Playground", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		playground *core.Playground

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		playground = core.NewPlayground(fakeLogger, fakeRepo, fakeJWT)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg core.CredentialsMessage
			err error
		)

		BeforeEach(func() {
			msg = core.CredentialsMessage{
				Username: "alice",
				Password: "pw1",
			}
		})

		JustBeforeEach(func() {
			err = playground.Register(ctx, msg)
		})

		When("the username is free", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{
					ID:       uuid.NewString(),
					Username: "alice",
				}, nil)
			})

			It("stores a user with a verifiable password hash", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, username, hash := fakeRepo.CreateUserArgsForCall(0)
				Expect(username).To(Equal("alice"))
				Expect(bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw1"))).To(Succeed())
			})
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, repository.ErrDuplicateUsername)
			})

			It("returns username taken error", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Login", func() {
		var (
			msg            core.CredentialsMessage
			token          string
			err            error
			userId         string
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.NewString()
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			msg = core.CredentialsMessage{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			token, err = playground.Login(ctx, msg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     msg.Username,
					PasswordHash: hashedPassword,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("returns a signed token carrying the user identity", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(username).To(Equal(msg.Username))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenIssuer.TokenInfo{
					UserName:   msg.Username,
					Subject:    userId,
					Expiration: 24,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns invalid credentials error", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     msg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				msg.Password = "wrongpass"
			})

			It("returns invalid credentials error", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     msg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("returns signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Verify", func() {
		var (
			identity core.Identity
			err      error
			userId   string
		)

		BeforeEach(func() {
			userId = uuid.NewString()
		})

		JustBeforeEach(func() {
			identity, err = playground.Verify("some.token")
		})

		When("the token is valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"sub":      userId,
					"username": "alice",
				}, nil)
			})

			It("returns the decoded identity", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(identity).To(Equal(core.Identity{ID: userId, Username: "alice"}))
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("some.token"))
			})
		})

		When("validation fails", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("returns invalid token error", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
			})
		})

		When("the subject claim is missing", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"username": "alice"}, nil)
			})

			It("returns invalid token error", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
			})
		})
	})

	Describe("ListPublished", func() {
		var (
			records []core.GameRecord
			err     error
			aliceId string
			bobId   string
		)

		BeforeEach(func() {
			aliceId = uuid.NewString()
			bobId = uuid.NewString()
		})

		JustBeforeEach(func() {
			records, err = playground.ListPublished(ctx)
		})

		When("games exist", func() {
			BeforeEach(func() {
				fakeRepo.ListPublishedGamesReturns([]repository.Game{
					{ID: "g1", Name: "G1", HTML: "<b>hi</b>", AuthorID: aliceId, Published: true},
					{ID: "g2", Name: "G2", HTML: "<i>yo</i>", AuthorID: bobId, Published: true},
					{ID: "g3", Name: "G3", HTML: "<p>x</p>", AuthorID: aliceId, Published: true},
				}, nil)
				fakeRepo.GetUsersByIDReturns([]repository.User{
					{ID: aliceId, Username: "alice"},
					{ID: bobId, Username: "bob"},
				}, nil)
			})

			It("resolves each author without exposing password data", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(3))
				Expect(records[0].Author).To(Equal(core.AuthorRecord{ID: aliceId, Username: "alice"}))
				Expect(records[1].Author).To(Equal(core.AuthorRecord{ID: bobId, Username: "bob"}))
				Expect(records[2].Author).To(Equal(core.AuthorRecord{ID: aliceId, Username: "alice"}))

				Expect(fakeRepo.GetUsersByIDCallCount()).To(Equal(1))
				_, ids := fakeRepo.GetUsersByIDArgsForCall(0)
				Expect(ids).To(ConsistOf(aliceId, bobId))
			})
		})

		When("no games are published", func() {
			BeforeEach(func() {
				fakeRepo.ListPublishedGamesReturns([]repository.Game{}, nil)
				fakeRepo.GetUsersByIDReturns([]repository.User{}, nil)
			})

			It("returns an empty list", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(BeEmpty())
			})
		})

		When("listing fails", func() {
			BeforeEach(func() {
				fakeRepo.ListPublishedGamesReturns(nil, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetGame", func() {
		var (
			record  core.GameRecord
			err     error
			aliceId string
		)

		BeforeEach(func() {
			aliceId = uuid.NewString()
		})

		JustBeforeEach(func() {
			record, err = playground.GetGame(ctx, "g1")
		})

		When("the game exists", func() {
			BeforeEach(func() {
				fakeRepo.GetGameByIDReturns(repository.Game{
					ID: "g1", Name: "G1", HTML: "<b>hi</b>", AuthorID: aliceId, Published: true,
				}, nil)
				fakeRepo.GetUsersByIDReturns([]repository.User{
					{ID: aliceId, Username: "alice"},
				}, nil)
			})

			It("returns the game with its author resolved", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal("g1"))
				Expect(record.Name).To(Equal("G1"))
				Expect(record.HTML).To(Equal("<b>hi</b>"))
				Expect(record.Author.Username).To(Equal("alice"))
			})
		})

		When("the game does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetGameByIDReturns(repository.Game{}, repository.ErrGameNotFound)
			})

			It("returns game not found error", func() {
				Expect(err).To(MatchError(core.ErrGameNotFound))
			})
		})
	})

	Describe("CreateGame", func() {
		var (
			identity core.Identity
			record   core.GameRecord
			err      error
			aliceId  string
		)

		BeforeEach(func() {
			aliceId = uuid.NewString()
			identity = core.Identity{ID: aliceId, Username: "alice"}
		})

		JustBeforeEach(func() {
			record, err = playground.CreateGame(ctx, identity, core.NewGameMessage{
				Name: "G1",
				HTML: "<b>hi</b>",
			})
		})

		When("the author exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{ID: aliceId, Username: "alice"}, nil)
				fakeRepo.CreateGameStub = func(ctx context.Context, game repository.Game) (repository.Game, error) {
					game.ID = "g1"
					return game, nil
				}
			})

			It("stores a published game owned by the author", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.CreateGameCallCount()).To(Equal(1))
				_, arg := fakeRepo.CreateGameArgsForCall(0)
				Expect(arg.Name).To(Equal("G1"))
				Expect(arg.HTML).To(Equal("<b>hi</b>"))
				Expect(arg.AuthorID).To(Equal(aliceId))
				Expect(arg.Published).To(BeTrue())

				Expect(record.ID).To(Equal("g1"))
				Expect(record.Author).To(Equal(core.AuthorRecord{ID: aliceId, Username: "alice"}))
			})
		})

		When("the author no longer exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns invalid token error without creating anything", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
				Expect(fakeRepo.CreateGameCallCount()).To(Equal(0))
			})
		})
	})

	Describe("UpdateGame", func() {
		var (
			identity core.Identity
			msg      core.GameUpdateMessage
			record   core.GameRecord
			err      error
			aliceId  string
			before   time.Time
		)

		BeforeEach(func() {
			aliceId = uuid.NewString()
			identity = core.Identity{ID: aliceId, Username: "alice"}
			before = time.Now().Add(-time.Hour)
			msg = core.GameUpdateMessage{}

			fakeRepo.GetGameByIDReturns(repository.Game{
				ID: "g1", Name: "G1", HTML: "<b>hi</b>", AuthorID: aliceId, Published: true, UpdatedAt: before,
			}, nil)
			fakeRepo.GetUserByIDReturns(repository.User{ID: aliceId, Username: "alice"}, nil)
		})

		JustBeforeEach(func() {
			record, err = playground.UpdateGame(ctx, identity, "g1", msg)
		})

		When("only the html field is supplied", func() {
			BeforeEach(func() {
				html := "<p>x</p>"
				msg = core.GameUpdateMessage{HTML: &html}
			})

			It("leaves the name unchanged and refreshes the update time", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.UpdateGameCallCount()).To(Equal(1))
				_, arg := fakeRepo.UpdateGameArgsForCall(0)
				Expect(arg.Name).To(Equal("G1"))
				Expect(arg.HTML).To(Equal("<p>x</p>"))
				Expect(arg.UpdatedAt).To(BeTemporally(">", before))

				Expect(record.Name).To(Equal("G1"))
				Expect(record.HTML).To(Equal("<p>x</p>"))
			})
		})

		When("only the name field is supplied", func() {
			BeforeEach(func() {
				name := "G1 remastered"
				msg = core.GameUpdateMessage{Name: &name}
			})

			It("leaves the html unchanged", func() {
				Expect(err).NotTo(HaveOccurred())

				_, arg := fakeRepo.UpdateGameArgsForCall(0)
				Expect(arg.Name).To(Equal("G1 remastered"))
				Expect(arg.HTML).To(Equal("<b>hi</b>"))
			})
		})

		When("the requester is not the author", func() {
			BeforeEach(func() {
				identity = core.Identity{ID: uuid.NewString(), Username: "bob"}
			})

			It("returns not owner error and leaves the game unchanged", func() {
				Expect(err).To(MatchError(core.ErrNotOwner))
				Expect(fakeRepo.UpdateGameCallCount()).To(Equal(0))
			})
		})

		When("the game does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetGameByIDReturns(repository.Game{}, repository.ErrGameNotFound)
			})

			It("returns game not found error", func() {
				Expect(err).To(MatchError(core.ErrGameNotFound))
			})
		})

		When("persisting the update fails", func() {
			BeforeEach(func() {
				fakeRepo.UpdateGameReturns(fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteGame", func() {
		var (
			identity core.Identity
			err      error
			aliceId  string
		)

		BeforeEach(func() {
			aliceId = uuid.NewString()
			identity = core.Identity{ID: aliceId, Username: "alice"}

			fakeRepo.GetGameByIDReturns(repository.Game{
				ID: "g1", AuthorID: aliceId,
			}, nil)
		})

		JustBeforeEach(func() {
			err = playground.DeleteGame(ctx, identity, "g1")
		})

		When("the requester owns the game", func() {
			It("removes the game", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.DeleteGameByIDCallCount()).To(Equal(1))
				_, id := fakeRepo.DeleteGameByIDArgsForCall(0)
				Expect(id).To(Equal("g1"))
			})
		})

		When("the requester is not the author", func() {
			BeforeEach(func() {
				identity = core.Identity{ID: uuid.NewString(), Username: "bob"}
			})

			It("returns not owner error and deletes nothing", func() {
				Expect(err).To(MatchError(core.ErrNotOwner))
				Expect(fakeRepo.DeleteGameByIDCallCount()).To(Equal(0))
			})
		})

		When("the game does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetGameByIDReturns(repository.Game{}, repository.ErrGameNotFound)
			})

			It("returns game not found error", func() {
				Expect(err).To(MatchError(core.ErrGameNotFound))
			})
		})
	})
})
