package tests

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/Panthutk/UniPlan/apps/api/echo"
	"github.com/Panthutk/UniPlan/core"
	"github.com/Panthutk/UniPlan/core/classroom"
	"github.com/Panthutk/UniPlan/core/planner"
	"github.com/Panthutk/UniPlan/core/reminder"
	"github.com/Panthutk/UniPlan/core/timetable"
	emailsvc "github.com/Panthutk/UniPlan/services/email"
	inmemdb "github.com/Panthutk/UniPlan/storage/inmem"
	testutil "github.com/Panthutk/UniPlan/tests"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type testEnv struct {
	server *echoapi.Server
	conf   *core.Config
	source *testutil.StubClassroomSource
	remln  reminder.Repository
}

func setup(t *testing.T) *testEnv {
	t.Helper()

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	ttRepo := inmemdb.NewTimetableRepository(db)
	remRepo := inmemdb.NewReminderRepository(db)

	conf := testutil.NewConfig(t)
	logger := core.NewStdLogger(log.New(ioutil.Discard, "", 0))
	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	source := &testutil.StubClassroomSource{}

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:         conf,
			Logger:       logger,
			ClassroomSvc: classroom.NewService(source, logger),
			TimetableSvc: timetable.NewService(ttRepo, logger),
			ReminderSvc:  reminder.NewService(remRepo, mailSvc, logger, conf.ReminderOffsets),
			Linker:       planner.NewLinker(nil),
			Validate:     validate,
			Translator:   translator,
		},
	)
	return &testEnv{server: server, conf: conf, source: source, remln: remRepo}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

type httpErr struct {
	Error string `json:"error"`
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, conf *core.Config) string {
	t.Helper()
	claims := echoapi.GetSessionClaims(conf, "student@gmail.com", "Student")
	token, err := echoapi.GenerateToken(conf, claims)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
}
