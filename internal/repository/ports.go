package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	GetAllIn(ctx context.Context, column string, values any, entity any) error
	Save(ctx context.Context, record any) error
	DeleteBy(ctx context.Context, column string, value any, model any) error
}
