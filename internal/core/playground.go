package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"playground/internal/repository"
	tokenIssuer "playground/pkg/jwt"
)

var ErrUsernameTaken error = errors.New("username already taken")
var ErrInvalidCredentials error = errors.New("invalid credentials")
var ErrInvalidToken error = errors.New("invalid token")
var ErrGameNotFound error = errors.New("game not found")
var ErrNotOwner error = errors.New("game belongs to another user")

const tokenExpirationHours = 24

// Playground provides user registration/login and the game CRUD operations.
type Playground struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
}

// NewPlayground is a constructor function for the Playground type.
func NewPlayground(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer) *Playground {
	return &Playground{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
	}
}

// Register hashes the supplied password and stores a new user. It does not log the user in.
func (p *Playground) Register(ctx context.Context, msg CredentialsMessage) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user, err := p.repo.CreateUser(ctx, msg.Username, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	p.logs.Infow("user registered", "userId", user.ID, "username", user.Username)
	return nil
}

// Login checks the provided username and password against the database. If the
// credentials are valid, it generates a signed JWT token for the user. Unknown
// username and wrong password both map to ErrInvalidCredentials so the endpoint
// does not confirm which usernames exist.
func (p *Playground) Login(ctx context.Context, msg CredentialsMessage) (string, error) {
	user, err := p.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: tokenExpirationHours,
	}
	token := p.jwtIssuer.Generate(tokenInfo)
	signed, err := p.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Verify validates a bearer token and returns the identity it carries.
func (p *Playground) Verify(token string) (Identity, error) {
	claims, err := p.jwtIssuer.Validate(token)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Identity{}, fmt.Errorf("%w: missing subject claim", ErrInvalidToken)
	}

	username, _ := claims["username"].(string)

	return Identity{
		ID:       sub,
		Username: username,
	}, nil
}

// ListPublished returns all published games with their author resolved to id and username.
func (p *Playground) ListPublished(ctx context.Context) ([]GameRecord, error) {
	games, err := p.repo.ListPublishedGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published games: %w", err)
	}

	records, err := p.resolveAuthors(ctx, games)
	if err != nil {
		return nil, fmt.Errorf("resolve game authors: %w", err)
	}

	return records, nil
}

// GetGame returns a single game with its author resolved, or ErrGameNotFound.
func (p *Playground) GetGame(ctx context.Context, id string) (GameRecord, error) {
	game, err := p.repo.GetGameByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return GameRecord{}, ErrGameNotFound
		}
		return GameRecord{}, fmt.Errorf("get game by id: %w", err)
	}

	records, err := p.resolveAuthors(ctx, []repository.Game{game})
	if err != nil {
		return GameRecord{}, fmt.Errorf("resolve game author: %w", err)
	}

	return records[0], nil
}

// CreateGame stores a new game owned by the verified identity. Games are published by default.
func (p *Playground) CreateGame(ctx context.Context, identity Identity, msg NewGameMessage) (GameRecord, error) {
	// the author reference must point to an existing user
	author, err := p.repo.GetUserByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return GameRecord{}, fmt.Errorf("%w: unknown author", ErrInvalidToken)
		}
		return GameRecord{}, fmt.Errorf("get author: %w", err)
	}

	game, err := p.repo.CreateGame(ctx, repository.Game{
		Name:      msg.Name,
		HTML:      msg.HTML,
		AuthorID:  author.ID,
		Published: true,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return GameRecord{}, fmt.Errorf("create game: %w", err)
	}

	p.logs.Infow("game created", "gameId", game.ID, "userId", author.ID)

	return p.gameToRecord(game, author), nil
}

// UpdateGame applies the supplied fields to a game owned by the identity and
// refreshes its update time. Two concurrent updates race with last write wins.
func (p *Playground) UpdateGame(ctx context.Context, identity Identity, id string, msg GameUpdateMessage) (GameRecord, error) {
	game, err := p.ownedGame(ctx, identity, id)
	if err != nil {
		return GameRecord{}, err
	}

	if msg.Name != nil {
		game.Name = *msg.Name
	}
	if msg.HTML != nil {
		game.HTML = *msg.HTML
	}
	game.UpdatedAt = time.Now()

	if err := p.repo.UpdateGame(ctx, game); err != nil {
		return GameRecord{}, fmt.Errorf("update game: %w", err)
	}

	author, err := p.repo.GetUserByID(ctx, game.AuthorID)
	if err != nil {
		return GameRecord{}, fmt.Errorf("get author: %w", err)
	}

	p.logs.Infow("game updated", "gameId", game.ID, "userId", identity.ID)

	return p.gameToRecord(game, author), nil
}

// DeleteGame removes a game owned by the identity.
func (p *Playground) DeleteGame(ctx context.Context, identity Identity, id string) error {
	game, err := p.ownedGame(ctx, identity, id)
	if err != nil {
		return err
	}

	if err := p.repo.DeleteGameByID(ctx, game.ID); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}

	p.logs.Infow("game deleted", "gameId", game.ID, "userId", identity.ID)
	return nil
}

// ownedGame fetches a game and enforces the single authorization rule of the
// system: the requesting identity must be the game's author.
func (p *Playground) ownedGame(ctx context.Context, identity Identity, id string) (repository.Game, error) {
	game, err := p.repo.GetGameByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return repository.Game{}, ErrGameNotFound
		}
		return repository.Game{}, fmt.Errorf("get game by id: %w", err)
	}

	if game.AuthorID != identity.ID {
		return repository.Game{}, ErrNotOwner
	}

	return game, nil
}

// resolveAuthors is the explicit read-side join: it batch-loads the users the
// games reference and attaches {id, username} to each record. Password data
// never leaves this package.
func (p *Playground) resolveAuthors(ctx context.Context, games []repository.Game) ([]GameRecord, error) {
	authorIds := make([]string, 0, len(games))
	seen := make(map[string]struct{})
	for _, game := range games {
		if _, ok := seen[game.AuthorID]; ok {
			continue
		}
		seen[game.AuthorID] = struct{}{}
		authorIds = append(authorIds, game.AuthorID)
	}

	authors, err := p.repo.GetUsersByID(ctx, authorIds)
	if err != nil {
		return nil, fmt.Errorf("get users by id: %w", err)
	}

	authorsById := make(map[string]repository.User, len(authors))
	for _, author := range authors {
		authorsById[author.ID] = author
	}

	records := make([]GameRecord, len(games))
	for i, game := range games {
		records[i] = p.gameToRecord(game, authorsById[game.AuthorID])
	}
	return records, nil
}

func (p *Playground) gameToRecord(game repository.Game, author repository.User) GameRecord {
	return GameRecord{
		ID:   game.ID,
		Name: game.Name,
		HTML: game.HTML,
		Author: AuthorRecord{
			ID:       game.AuthorID,
			Username: author.Username,
		},
		Published: game.Published,
		UpdatedAt: game.UpdatedAt,
	}
}
