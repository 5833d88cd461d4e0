package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createOtpTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE otps (
		email TEXT PRIMARY KEY,
		code TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCandidateTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE candidates (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL,
		position TEXT NOT NULL,
		experience TEXT NOT NULL,
		status TEXT NOT NULL,
		assigned_company TEXT,
		interview_date DATETIME,
		skills TEXT NOT NULL DEFAULT '[]',
		created_by TEXT,
		created_at DATETIME
	);`)
}

func createCompanyTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE companies (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		industry TEXT NOT NULL,
		location TEXT,
		website TEXT,
		poc_name TEXT NOT NULL,
		poc_email TEXT NOT NULL,
		poc_phone TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createInterviewTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE interviews (
		id TEXT PRIMARY KEY,
		candidate_id TEXT NOT NULL,
		candidate_name TEXT NOT NULL,
		company_id TEXT NOT NULL,
		company_name TEXT NOT NULL,
		position TEXT NOT NULL,
		date DATETIME NOT NULL,
		time TEXT NOT NULL,
		type TEXT NOT NULL,
		status TEXT NOT NULL,
		interviewer TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createNotificationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE notifications (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		recipients TEXT NOT NULL,
		subject TEXT NOT NULL,
		body TEXT NOT NULL,
		calendar TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		attempts INTEGER NOT NULL DEFAULT 0,
		last_error TEXT,
		created_at DATETIME,
		sent_at DATETIME
	);`)
}
