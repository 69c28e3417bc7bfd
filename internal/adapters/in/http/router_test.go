package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "parceltracker/internal/adapters/in/http"
	"parceltracker/internal/core/application/usecases/commands"
	"parceltracker/internal/core/application/usecases/queries"
	"parceltracker/internal/core/domain/model/directory"
	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/domain/model/parcel"
	"parceltracker/internal/core/ports/mocks"
	"parceltracker/internal/generated/servers"
	"parceltracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const secret = "test-secret"

type RouterTestSuite struct {
	suite.Suite

	parcels   *mocks.ParcelRepository
	history   *mocks.HistoryRepository
	directory *mocks.DirectoryRepository
	uow       *mocks.UnitOfWorkFactory
	auth      *httpadapter.Authenticator
	router    *echo.Echo
}

func (s *RouterTestSuite) SetupTest() {
	s.parcels = new(mocks.ParcelRepository)
	s.history = new(mocks.HistoryRepository)
	s.directory = new(mocks.DirectoryRepository)
	s.auth = httpadapter.NewAuthenticator(secret)
	s.uow = new(mocks.UnitOfWorkFactory)
	uowFactory := s.uow

	server := httpadapter.NewServer(
		httpadapter.CommandHandlers{
			CreateParcel:       commands.NewCreateParcelCommandHandler(uowFactory),
			UpdateParcel:       commands.NewUpdateParcelCommandHandler(uowFactory),
			UpdateParcelStatus: commands.NewUpdateParcelStatusCommandHandler(uowFactory),
			DeleteParcel:       commands.NewDeleteParcelCommandHandler(uowFactory),
			CreateHistoryEntry: commands.NewCreateHistoryEntryCommandHandler(uowFactory),
			DeleteHistoryEntry: commands.NewDeleteHistoryEntryCommandHandler(uowFactory),
			AddDirectoryEntry:  commands.NewAddDirectoryEntryCommandHandler(uowFactory),
		},
		httpadapter.QueryHandlers{
			GetParcel:                   queries.NewGetParcelQueryHandler(s.parcels, s.directory),
			SearchParcels:               queries.NewSearchParcelsQueryHandler(s.parcels),
			CountParcels:                queries.NewCountParcelsQueryHandler(s.parcels),
			GetParcelsBy:                queries.NewGetParcelsByQueryHandler(s.parcels, s.directory),
			TrackParcel:                 queries.NewTrackParcelQueryHandler(s.parcels, s.history, s.directory),
			GetParcelHistory:            queries.NewGetParcelHistoryQueryHandler(s.parcels, s.history),
			GetLatestHistoryEntry:       queries.NewGetLatestHistoryEntryQueryHandler(s.parcels, s.history),
			CountParcelHistory:          queries.NewCountParcelHistoryQueryHandler(s.parcels, s.history),
			GetHistoryEntry:             queries.NewGetHistoryEntryQueryHandler(s.history),
			ListHistoryEntries:          queries.NewListHistoryEntriesQueryHandler(s.history),
			GetCommentedHistoryEntries:  queries.NewGetCommentedHistoryEntriesQueryHandler(s.history),
			CountDeliveredToday:         queries.NewCountDeliveredTodayQueryHandler(s.history),
			GlobalStatistics:            queries.NewGetGlobalStatisticsQueryHandler(s.parcels, s.directory),
			DeliveryPersonStatistics:    queries.NewGetDeliveryPersonStatisticsQueryHandler(s.parcels, s.directory),
			AllDeliveryPersonStatistics: queries.NewGetAllDeliveryPersonStatisticsQueryHandler(s.parcels, s.directory),
			ZoneStatistics:              queries.NewGetZoneStatisticsQueryHandler(s.parcels, s.directory),
			AllZoneStatistics:           queries.NewGetAllZoneStatisticsQueryHandler(s.parcels, s.directory),
			ListDirectory:               queries.NewListDirectoryQueryHandler(s.directory),
		},
	)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = httpadapter.NewRouter(server, s.auth, prometheus.NewRegistry(), logger)
}

func (s *RouterTestSuite) token(role httpadapter.Role, deliveryPersonID *kernel.UUID) string {
	token, err := s.auth.Issue("user-1", role, deliveryPersonID, time.Hour)
	s.Require().NoError(err)
	return token
}

func (s *RouterTestSuite) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) decodeError(rec *httptest.ResponseRecorder) servers.Error {
	var body servers.Error
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *RouterTestSuite) fixture() (*parcel.Parcel, *directory.SenderClient, *directory.Recipient) {
	senderContact, err := directory.NewContact("Sam", "Sender", "+33 1", "sam@example.org")
	s.Require().NoError(err)
	sender, err := directory.NewSenderClient(kernel.NewUUID(), senderContact, "1 Quai")
	s.Require().NoError(err)
	recipientContact, err := directory.NewContact("Rita", "Recipient", "+33 2", "Rita@Example.org")
	s.Require().NoError(err)
	recipient, err := directory.NewRecipient(kernel.NewUUID(), recipientContact, "2 Rue")
	s.Require().NoError(err)

	weight, err := kernel.NewWeight(decimal.RequireFromString("2.50"))
	s.Require().NoError(err)
	p, err := parcel.NewParcel(kernel.NewUUID(), nil, weight, parcel.Urgent, "Lyon",
		sender.ID(), recipient.ID(), nil, time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	return p, sender, recipient
}

func (s *RouterTestSuite) TestHealthIsPublic() {
	rec := s.do(http.MethodGet, "/health", "", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
}

func (s *RouterTestSuite) TestMissingTokenIsUnauthorized() {
	rec := s.do(http.MethodGet, "/api/v1/parcels", "", "")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(http.StatusUnauthorized, s.decodeError(rec).Code)
	s.Equal("Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func (s *RouterTestSuite) TestTokenSignedWithAnotherSecretIsUnauthorized() {
	forged, err := httpadapter.NewAuthenticator("other").Issue("user-1", httpadapter.RoleAdmin, nil, time.Hour)
	s.Require().NoError(err)

	rec := s.do(http.MethodGet, "/api/v1/parcels", forged, "")

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestCapabilities() {
	person := kernel.NewUUID()
	parcelPath := "/api/v1/parcels/" + kernel.NewUUID().String()

	tests := []struct {
		name   string
		method string
		target string
		token  string
	}{
		{"manager cannot delete parcels", http.MethodDelete, parcelPath, s.token(httpadapter.RoleManager, nil)},
		{"manager cannot write the directory", http.MethodPost, "/api/v1/zones", s.token(httpadapter.RoleManager, nil)},
		{"admin cannot update status as assignee", http.MethodPatch, parcelPath + "/status", s.token(httpadapter.RoleAdmin, nil)},
		{"delivery person cannot list parcels", http.MethodGet, "/api/v1/parcels", s.token(httpadapter.RoleDeliveryPerson, &person)},
		{"delivery person cannot read statistics", http.MethodGet, "/api/v1/statistics/global", s.token(httpadapter.RoleDeliveryPerson, &person)},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.do(tt.method, tt.target, tt.token, `{}`)

			s.Equal(http.StatusForbidden, rec.Code)
		})
	}
}

func (s *RouterTestSuite) TestGetParcelNotFound() {
	id := kernel.NewUUID()
	s.parcels.On("Get", mock.Anything, id).
		Return(nil, errs.NewObjectNotFoundError("parcel", "parcelId", id.String()))

	rec := s.do(http.MethodGet, "/api/v1/parcels/"+id.String(), s.token(httpadapter.RoleManager, nil), "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(s.decodeError(rec).Message, id.String())
}

func (s *RouterTestSuite) TestGetParcelResolvesReferences() {
	p, sender, recipient := s.fixture()
	s.parcels.On("Get", mock.Anything, p.ID()).Return(p, nil)
	s.directory.On("Get", mock.Anything, directory.KindSender, sender.ID()).Return(sender, nil)
	s.directory.On("Get", mock.Anything, directory.KindRecipient, recipient.ID()).Return(recipient, nil)
	person := kernel.NewUUID()

	rec := s.do(http.MethodGet, "/api/v1/parcels/"+p.ID().String(), s.token(httpadapter.RoleDeliveryPerson, &person), "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var body servers.Parcel
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(servers.ParcelStatusCREATED, body.Status)
	s.Equal(servers.ParcelPriorityURGENT, body.Priority)
	s.Equal("Sam Sender", body.Sender.Name)
	s.Equal("Rita Recipient", body.Recipient.Name)
	s.True(decimal.RequireFromString("2.5").Equal(body.Weight))
	s.Nil(body.Zone)
}

func (s *RouterTestSuite) TestMalformedPathParameters() {
	token := s.token(httpadapter.RoleAdmin, nil)

	s.Run("invalid uuid", func() {
		rec := s.do(http.MethodGet, "/api/v1/parcels/not-a-uuid", token, "")

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(s.decodeError(rec).Message, "parcelId")
	})

	s.Run("unknown status", func() {
		rec := s.do(http.MethodGet, "/api/v1/parcels/by-status/LOST", token, "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown group dimension", func() {
		rec := s.do(http.MethodGet, "/api/v1/parcels/grouped/weight", token, "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *RouterTestSuite) violationFields(rec *httptest.ResponseRecorder) []string {
	s.Require().Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	problem := s.decodeError(rec)
	s.Require().NotNil(problem.Violations)
	fields := make([]string, 0, len(*problem.Violations))
	for _, v := range *problem.Violations {
		s.Require().NotNil(v.Field)
		fields = append(fields, *v.Field)
	}
	return fields
}

func (s *RouterTestSuite) TestCreateParcelReportsEveryViolation() {
	body := `{"weight": "-1", "priority": "SLOW", "senderId": "` + kernel.NewUUID().String() +
		`", "recipientId": "` + kernel.NewUUID().String() + `", "destinationCity": "Lyon"}`

	rec := s.do(http.MethodPost, "/api/v1/parcels", s.token(httpadapter.RoleManager, nil), body)

	s.ElementsMatch([]string{"weight", "priority"}, s.violationFields(rec))
}

func (s *RouterTestSuite) TestCreateParcelMergesBodyAndCommandViolations() {
	body := `{
		"weight": "0",
		"priority": "BOGUS",
		"destinationCity": "",
		"description": "` + strings.Repeat("x", 300) + `",
		"senderId": "` + kernel.NewUUID().String() + `",
		"recipientId": "` + kernel.NewUUID().String() + `",
		"items": [{"productId": "` + kernel.NewUUID().String() + `", "quantity": 0}]
	}`

	rec := s.do(http.MethodPost, "/api/v1/parcels", s.token(httpadapter.RoleAdmin, nil), body)

	s.ElementsMatch([]string{
		"weight", "priority", "destinationCity", "description", "items[0].quantity",
	}, s.violationFields(rec))
}

func (s *RouterTestSuite) TestCreateParcelValidatesBeforeDirectoryLookups() {
	body := `{"weight": "1.20", "priority": "NORMAL", "destinationCity": "   ", "senderId": "` +
		kernel.NewUUID().String() + `", "recipientId": "` + kernel.NewUUID().String() + `"}`

	rec := s.do(http.MethodPost, "/api/v1/parcels", s.token(httpadapter.RoleAdmin, nil), body)

	s.Equal([]string{"destinationCity"}, s.violationFields(rec))
	s.uow.AssertNotCalled(s.T(), "Create")
}

func (s *RouterTestSuite) TestCreateParcelRequiresBodyFields() {
	rec := s.do(http.MethodPost, "/api/v1/parcels", s.token(httpadapter.RoleAdmin, nil), `{"weight": 1, "priority": "NORMAL"}`)

	s.Require().Equal(http.StatusUnprocessableEntity, rec.Code)
	problem := s.decodeError(rec)
	s.Require().NotNil(problem.Violations)
	s.Len(*problem.Violations, 3)
}

func (s *RouterTestSuite) TestListParcelsRejectsOversizedPage() {
	rec := s.do(http.MethodGet, "/api/v1/parcels?size=500", s.token(httpadapter.RoleAdmin, nil), "")

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (s *RouterTestSuite) TestTrackingIsPublicAndChecksEmail() {
	p, sender, recipient := s.fixture()
	s.parcels.On("Get", mock.Anything, p.ID()).Return(p, nil)
	s.directory.On("Get", mock.Anything, directory.KindSender, sender.ID()).Return(sender, nil)
	s.directory.On("Get", mock.Anything, directory.KindRecipient, recipient.ID()).Return(recipient, nil)
	s.history.On("Timeline", mock.Anything, p.ID()).Return(parcel.NewTimeline(p.PullHistory()), nil)

	s.Run("matching email", func() {
		rec := s.do(http.MethodGet, "/api/v1/tracking/"+p.ID().String()+"?email=%20rita@example.org", "", "")

		s.Require().Equal(http.StatusOK, rec.Code)
		var body servers.Tracking
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(p.ID().Bytes(), body.Parcel.Id)
		s.Require().Len(body.History, 1)
		s.Equal(servers.ParcelStatusCREATED, body.History[0].Status)
	})

	s.Run("other email", func() {
		rec := s.do(http.MethodGet, "/api/v1/tracking/"+p.ID().String()+"?email=eve@example.org", "", "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("missing email", func() {
		rec := s.do(http.MethodGet, "/api/v1/tracking/"+p.ID().String(), "", "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *RouterTestSuite) TestCountDeliveredToday() {
	s.history.On("CountByStatusBetween", mock.Anything, parcel.Delivered, mock.Anything, mock.Anything).
		Return(int64(3), nil)
	person := kernel.NewUUID()

	rec := s.do(http.MethodGet, "/api/v1/history/delivered-today/count",
		s.token(httpadapter.RoleDeliveryPerson, &person), "")

	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"count": 3}`, rec.Body.String())
}

func (s *RouterTestSuite) TestMetricsAreExposed() {
	s.do(http.MethodGet, "/health", "", "")

	rec := s.do(http.MethodGet, "/metrics", "", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `parceltracker_http_requests_total{method="GET",path="/health",status_code="200"} 1`)
}

func (s *RouterTestSuite) TestOpenAPIDocumentIsServed() {
	rec := s.do(http.MethodGet, "/openapi.json", "", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"operationId":"TrackParcel"`)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
