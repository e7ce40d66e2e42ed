package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"playground/internal/core"
	"playground/internal/http/handler"
	"playground/internal/http/handler/fake"
)

var _ = Describe("GameHandler", func() {
	var (
		gh            *handler.GameHandler
		fakeService   *fake.GameService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		identity      core.Identity
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.GameService)
		fakeValidator = new(fake.RequestValidator)
		identity = core.Identity{ID: "u1", Username: "alice"}

		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		gh = handler.NewGameHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleRegister", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","password":"pw1"}`)
			req = httptest.NewRequest("POST", "/api/register", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			gh.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			It("returns success", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]bool
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["success"]).To(BeTrue())

				Expect(fakeService.RegisterCallCount()).To(Equal(1))
				_, msg := fakeService.RegisterArgsForCall(0)
				Expect(msg).To(Equal(core.CredentialsMessage{Username: "alice", Password: "pw1"}))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.ErrUsernameTaken)
			})

			It("returns status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrUsernameTaken.Error()))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("returns status 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})

		When("registration fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(fakeErr)
			})

			It("returns status 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleLogin", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","password":"pw1"}`)
			req = httptest.NewRequest("POST", "/api/login", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.LoginReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			gh.HandleLogin(w, req)
		})

		When("login succeeds", func() {
			It("returns a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]string
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["token"]).To(Equal("signed.token"))
			})
		})

		When("the credentials are invalid", func() {
			BeforeEach(func() {
				fakeService.LoginReturns("", core.ErrInvalidCredentials)
			})

			It("returns status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleListGames", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/games", nil)
		})

		JustBeforeEach(func() {
			gh.HandleListGames(w, req)
		})

		When("games are available", func() {
			BeforeEach(func() {
				fakeService.ListPublishedReturns([]core.GameRecord{
					{ID: "g1", Name: "G1", Author: core.AuthorRecord{ID: "u1", Username: "alice"}},
				}, nil)
			})

			It("returns the list of games", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response []core.GameRecord
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response).To(HaveLen(1))
				Expect(response[0].Author.Username).To(Equal("alice"))
			})
		})

		When("listing fails", func() {
			BeforeEach(func() {
				fakeService.ListPublishedReturns(nil, fakeErr)
			})

			It("returns status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleGetGame", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/games/g1", nil)
			req.SetPathValue("id", "g1")
		})

		JustBeforeEach(func() {
			gh.HandleGetGame(w, req)
		})

		When("the game exists", func() {
			BeforeEach(func() {
				fakeService.GetGameReturns(core.GameRecord{ID: "g1", Name: "G1"}, nil)
			})

			It("returns the game", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				_, id := fakeService.GetGameArgsForCall(0)
				Expect(id).To(Equal("g1"))
			})
		})

		When("the game does not exist", func() {
			BeforeEach(func() {
				fakeService.GetGameReturns(core.GameRecord{}, core.ErrGameNotFound)
			})

			It("returns status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleCreateGame", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"name":"G1","html":"<b>hi</b>"}`)
			req = httptest.NewRequest("POST", "/api/games", body)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer some.token")

			fakeService.VerifyReturns(identity, nil)
			fakeService.CreateGameReturns(core.GameRecord{ID: "g1", Name: "G1"}, nil)
		})

		JustBeforeEach(func() {
			gh.HandleCreateGame(w, req)
		})

		When("the request is authenticated", func() {
			It("creates the game for the token identity", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				Expect(fakeService.VerifyArgsForCall(0)).To(Equal("some.token"))

				Expect(fakeService.CreateGameCallCount()).To(Equal(1))
				_, argIdentity, msg := fakeService.CreateGameArgsForCall(0)
				Expect(argIdentity).To(Equal(identity))
				Expect(msg).To(Equal(core.NewGameMessage{Name: "G1", HTML: "<b>hi</b>"}))
			})
		})

		When("the bearer token is missing", func() {
			BeforeEach(func() {
				req.Header.Del("Authorization")
			})

			It("returns status 401 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.CreateGameCallCount()).To(Equal(0))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeService.VerifyReturns(core.Identity{}, core.ErrInvalidToken)
			})

			It("returns status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.CreateGameCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleUpdateGame", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"html":"<p>x</p>"}`)
			req = httptest.NewRequest("PUT", "/api/games/g1", body)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer some.token")
			req.SetPathValue("id", "g1")

			fakeService.VerifyReturns(identity, nil)
			fakeService.UpdateGameReturns(core.GameRecord{ID: "g1", Name: "G1", HTML: "<p>x</p>"}, nil)
		})

		JustBeforeEach(func() {
			gh.HandleUpdateGame(w, req)
		})

		When("the requester owns the game", func() {
			It("applies only the supplied fields", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				Expect(fakeService.UpdateGameCallCount()).To(Equal(1))
				_, argIdentity, id, msg := fakeService.UpdateGameArgsForCall(0)
				Expect(argIdentity).To(Equal(identity))
				Expect(id).To(Equal("g1"))
				Expect(msg.Name).To(BeNil())
				Expect(*msg.HTML).To(Equal("<p>x</p>"))
			})
		})

		When("the requester is not the owner", func() {
			BeforeEach(func() {
				fakeService.UpdateGameReturns(core.GameRecord{}, core.ErrNotOwner)
			})

			It("returns status 403", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})

		When("the game does not exist", func() {
			BeforeEach(func() {
				fakeService.UpdateGameReturns(core.GameRecord{}, core.ErrGameNotFound)
			})

			It("returns status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleDeleteGame", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("DELETE", "/api/games/g1", nil)
			req.Header.Set("Authorization", "Bearer some.token")
			req.SetPathValue("id", "g1")

			fakeService.VerifyReturns(identity, nil)
		})

		JustBeforeEach(func() {
			gh.HandleDeleteGame(w, req)
		})

		When("the requester owns the game", func() {
			It("deletes the game and returns success", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]bool
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["success"]).To(BeTrue())

				Expect(fakeService.DeleteGameCallCount()).To(Equal(1))
				_, argIdentity, id := fakeService.DeleteGameArgsForCall(0)
				Expect(argIdentity).To(Equal(identity))
				Expect(id).To(Equal("g1"))
			})
		})

		When("the requester is not the owner", func() {
			BeforeEach(func() {
				fakeService.DeleteGameReturns(core.ErrNotOwner)
			})

			It("returns status 403", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})

		When("the bearer token is missing", func() {
			BeforeEach(func() {
				req.Header.Del("Authorization")
			})

			It("returns status 401 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.DeleteGameCallCount()).To(Equal(0))
			})
		})
	})
})
