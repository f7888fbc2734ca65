package notify

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"Rozi/model"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type failingSink struct{ calls int }

func (f *failingSink) Notify(context.Context, model.Notification) error {
	f.calls++
	return errors.New("sink down")
}

func TestNewStampsEvent(t *testing.T) {
	n := New(model.KindVoteRecorded, "Vote Recorded", "You voted yes")
	assert.Len(t, n.EventID, 36)
	assert.False(t, n.OccurredAt.IsZero())
	assert.NotEqual(t, n.EventID, New(model.KindVoteRecorded, "", "").EventID)
}

func TestMultiSwallowsErrors(t *testing.T) {
	bad := &failingSink{}
	rec := NewRecorder(10)

	err := Multi{bad, nil, rec}.Notify(context.Background(), New(model.KindLendingFailed, "Lending Failed", ""))
	assert.NoError(t, err)
	assert.Equal(t, 1, bad.calls)
	assert.Len(t, rec.Recent(0), 1)
}

func TestRecorderKeepsNewestFirst(t *testing.T) {
	rec := NewRecorder(3)
	for i := 0; i < 5; i++ {
		rec.Notify(context.Background(), New(model.KindVoteRecorded, fmt.Sprint(i), ""))
	}

	all := rec.Recent(0)
	require.Len(t, all, 3)
	assert.Equal(t, "4", all[0].Title)
	assert.Equal(t, "2", all[2].Title)

	assert.Len(t, rec.Recent(1), 1)
	assert.Len(t, rec.Recent(50), 3)
}

func TestRecorderRecentFor(t *testing.T) {
	rec := NewRecorder(0)
	for i, user := range []string{"alice", "bob", "alice", "bob", "alice"} {
		n := New(model.KindVoteRecorded, fmt.Sprint(i), "")
		n.UserID = user
		rec.Notify(context.Background(), n)
	}

	alice := rec.RecentFor("alice", 2)
	require.Len(t, alice, 2)
	assert.Equal(t, "4", alice[0].Title)
	assert.Equal(t, "2", alice[1].Title)
	assert.Len(t, rec.RecentFor("bob", 0), 2)
	assert.Empty(t, rec.RecentFor("carol", 0))
}

func TestLogSink(t *testing.T) {
	logger, hook := test.NewNullLogger()
	n := New(model.KindVoteRecorded, "Vote Recorded", "You voted yes with 100 votes")
	n.UserID = "alice"
	n.SubjectID = 1

	require.NoError(t, LogSink{Logger: logger}.Notify(context.Background(), n))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.InfoLevel, entry.Level)
	assert.Equal(t, "alice", entry.Data["user"])
	assert.Equal(t, 1, entry.Data["subject"])
	assert.Contains(t, entry.Message, "Vote Recorded")
}

func TestRedisSink(t *testing.T) {
	mr := miniredis.RunT(t)
	cli := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cli.Close()

	sink := RedisSink{Client: cli, Stream: "rozi:notifications"}
	n := New(model.KindLendingSuccess, "Lending Successful", "lent 5000")
	require.NoError(t, sink.Notify(context.Background(), n))

	msgs, err := cli.XRange(context.Background(), "rozi:notifications", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, n.EventID, msgs[0].Values["id"])
	assert.Equal(t, string(model.KindLendingSuccess), msgs[0].Values["kind"])
}

func TestAuditSink(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `notifications`")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	n := New(model.KindVoteRecorded, "Vote Recorded", "")
	require.NoError(t, AuditSink{DB: gdb}.Notify(context.Background(), n))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEncodeKafka(t *testing.T) {
	n := New(model.KindRequestCreated, "Request Created", "")
	msg, err := EncodeKafka("rozi.notifications", n)
	require.NoError(t, err)
	assert.Equal(t, "rozi.notifications", *msg.TopicPartition.Topic)
	assert.Equal(t, []byte(model.KindRequestCreated), msg.Key)
	assert.Contains(t, string(msg.Value), n.EventID)
}

func TestDecodeKafka(t *testing.T) {
	n := New(model.KindLendingSuccess, "Lending Successful", "You have successfully lent ₹500 and received 50 $ROZI coins.")
	n.Amount, n.Reward = 500, 50
	msg, err := EncodeKafka("rozi.notifications", n)
	require.NoError(t, err)

	got, err := DecodeKafka(msg)
	require.NoError(t, err)
	assert.Equal(t, n.EventID, got.EventID)
	assert.Equal(t, n.Kind, got.Kind)
	assert.Equal(t, 50, got.Reward)
	assert.True(t, n.OccurredAt.Equal(got.OccurredAt))

	msg.Value = []byte("{not json")
	_, err = DecodeKafka(msg)
	assert.Error(t, err)
}

func TestAuditByUser(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "event_id", "kind", "title", "user_id", "amount"}).
		AddRow(2, "e-2", string(model.KindLendingSuccess), "Lending Successful", "alice", 500).
		AddRow(1, "e-1", string(model.KindVoteRecorded), "Vote Recorded", "alice", 0)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `notifications` WHERE user_id = ?")).
		WillReturnRows(rows)

	got, err := AuditSink{DB: gdb}.ByUser(context.Background(), "alice", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "e-2", got[0].EventID)
	assert.Equal(t, 500, got[0].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
