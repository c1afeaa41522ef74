package events

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx"
)

// RunCatalogEntry is the bookkeeping the simulation campaign keeps per run:
// where the produced dataset lives and how many events it should hold.
type RunCatalogEntry struct {
	RunNumber  int    `db:"RunNumber"`
	FilePath   string `db:"FilePath"`
	EventCount int    `db:"EventCount"`
	Source     string `db:"Source"`
}

func ConnectToDatabase(user string, pass string, host string, dbname string) (*sqlx.DB, error) {
	port := "3306"
	dbURI := fmt.Sprintf("%s:%s@(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)
	db, err := sqlx.Connect("mysql", dbURI)
	return db, err
}

// GetRunFromDB resolves a run number to its catalog entry.
func GetRunFromDB(db *sqlx.DB, runNumber int) (RunCatalogEntry, error) {
	query := "SELECT RunNumber, FilePath, EventCount, Source FROM SimulationRuns WHERE RunNumber = %d"
	query = fmt.Sprintf(query, runNumber)

	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Reading run %d from the catalog", runNumber)
		logger.Info(message, "database")
	}
	if configuration.Verbosity > 2 {
		message := fmt.Sprintf("Query: %s", query)
		logger.Info(message, "database")
	}

	rows, err := db.Queryx(query)
	if err != nil {
		errMessage := fmt.Errorf("error querying database: %w", err)
		return RunCatalogEntry{}, errMessage
	}
	defer rows.Close()

	for rows.Next() {
		result := RunCatalogEntry{}
		err := rows.StructScan(&result)
		if err != nil {
			errMessage := fmt.Errorf("error scanning DB row: %w", err)
			return RunCatalogEntry{}, errMessage
		}
		return result, nil
	}
	return RunCatalogEntry{}, fmt.Errorf("run %d not found in catalog", runNumber)
}
