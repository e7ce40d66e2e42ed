package db_test

import (
	"context"
	"database/sql"

	"playground/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Insert", func() {
		When("the record is new", func() {
			BeforeEach(func() {
				mock.ExpectBegin()

				mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\) RETURNING "id"$`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

				mock.ExpectCommit()
			})

			It("should insert the record without errors", func() {
				err := testDB.Insert(context.Background(), &Test{ID: 1, Username: "Alice"})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the record violates a unique constraint", func() {
			BeforeEach(func() {
				mock.ExpectBegin()

				mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\) RETURNING "id"$`).
					WithArgs("Alice", 1).
					WillReturnError(gorm.ErrDuplicatedKey)

				mock.ExpectRollback()
			})

			It("should return ErrDuplicate", func() {
				err := testDB.Insert(context.Background(), &Test{ID: 1, Username: "Alice"})
				Expect(err).To(Equal(db.ErrDuplicate))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllBy", func() {
		When("multiple records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1.*`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice").
						AddRow(2, "Alice"))
			})

			It("should return all matching records", func() {
				var results []Test
				err := testDB.GetAllBy(context.Background(), "username", "Alice", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no records match", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1.*`).
					WithArgs("Ghost").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))
			})

			It("should return an empty slice without errors", func() {
				var results []Test
				err := testDB.GetAllBy(context.Background(), "username", "Ghost", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(BeEmpty())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllIn", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username IN \(\$1,\$2\).*`).
				WithArgs("Alice", "Bob").
				WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
					AddRow(1, "Alice").
					AddRow(2, "Bob"))
		})

		It("should return every record matching the list", func() {
			var results []Test
			err := testDB.GetAllIn(context.Background(), "username", []string{"Alice", "Bob"}, &results)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(results[0].Username).To(Equal("Alice"))
			Expect(results[1].Username).To(Equal("Bob"))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Save", func() {
		BeforeEach(func() {
			mock.ExpectBegin()

			mock.ExpectExec(`^UPDATE "tests" SET "username"=\$1 WHERE "id" = \$2$`).
				WithArgs("Alicia", 1).
				WillReturnResult(sqlmock.NewResult(0, 1))

			mock.ExpectCommit()
		})

		It("should persist the full record", func() {
			err := testDB.Save(context.Background(), &Test{ID: 1, Username: "Alicia"})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("DeleteBy", func() {
		BeforeEach(func() {
			mock.ExpectBegin()

			mock.ExpectExec(`^DELETE FROM "tests" WHERE id = \$1$`).
				WithArgs(1).
				WillReturnResult(sqlmock.NewResult(0, 1))

			mock.ExpectCommit()
		})

		It("should delete records matching the column value", func() {
			err := testDB.DeleteBy(context.Background(), "id", 1, &Test{})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})
