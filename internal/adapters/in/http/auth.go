package http

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"parceltracker/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleManager        Role = "MANAGER"
	RoleDeliveryPerson Role = "DELIVERY_PERSON"
)

const (
	apiPrefix    = "/api/v1/"
	trackingPath = "/api/v1/tracking/:parcelId"
	principalKey = "principal"
)

// Claims is the token payload. DeliveryPersonID is only set for RoleDeliveryPerson.
type Claims struct {
	Role             Role   `json:"role"`
	DeliveryPersonID string `json:"delivery_person_id,omitempty"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller of a request.
type Principal struct {
	Subject          string
	Role             Role
	DeliveryPersonID *kernel.UUID
}

var (
	adminOnly       = []Role{RoleAdmin}
	staff           = []Role{RoleAdmin, RoleManager}
	staffOrCourier  = []Role{RoleAdmin, RoleManager, RoleDeliveryPerson}
	deliveryPersons = []Role{RoleDeliveryPerson}
)

// capabilities lists the routes that differ from the staff default.
var capabilities = map[string][]Role{
	"DELETE /api/v1/parcels/:parcelId":       adminOnly,
	"POST /api/v1/history":                   adminOnly,
	"DELETE /api/v1/history/:entryId":        adminOnly,
	"POST /api/v1/zones":                     adminOnly,
	"POST /api/v1/delivery-persons":          adminOnly,
	"POST /api/v1/senders":                   adminOnly,
	"POST /api/v1/recipients":                adminOnly,
	"POST /api/v1/products":                  adminOnly,
	"PATCH /api/v1/parcels/:parcelId/status": deliveryPersons,

	"GET /api/v1/parcels/:parcelId":                staffOrCourier,
	"GET /api/v1/parcels/:parcelId/history":        staffOrCourier,
	"GET /api/v1/history":                          staffOrCourier,
	"GET /api/v1/history/:entryId":                 staffOrCourier,
	"GET /api/v1/history/parcels/:parcelId":        staffOrCourier,
	"GET /api/v1/history/parcels/:parcelId/latest": staffOrCourier,
	"GET /api/v1/history/parcels/:parcelId/count":  staffOrCourier,
	"GET /api/v1/history/delivered-today/count":    staffOrCourier,
	"GET /api/v1/history/with-comments":            staffOrCourier,
}

// allowedRoles returns the roles that may call the route. Routes outside the
// API prefix and public tracking need no token.
func allowedRoles(method, route string) ([]Role, bool) {
	if !strings.HasPrefix(route, apiPrefix) || route == trackingPath {
		return nil, false
	}
	if roles, ok := capabilities[method+" "+route]; ok {
		return roles, true
	}
	return staff, true
}

// Authenticator issues and verifies HS256 bearer tokens.
type Authenticator struct {
	secret []byte
	now    func() time.Time
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret), now: time.Now}
}

// Issue signs a token for subject. deliveryPersonID is required for RoleDeliveryPerson.
func (a *Authenticator) Issue(subject string, role Role, deliveryPersonID *kernel.UUID, ttl time.Duration) (string, error) {
	if role == RoleDeliveryPerson && deliveryPersonID == nil {
		return "", errors.New("delivery person token needs a delivery person id")
	}

	now := a.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if deliveryPersonID != nil {
		claims.DeliveryPersonID = deliveryPersonID.String()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Parse verifies the signature and expiry of token and returns its principal.
func (a *Authenticator) Parse(token string) (Principal, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	principal := Principal{Subject: claims.Subject, Role: claims.Role}
	switch claims.Role {
	case RoleAdmin, RoleManager:
	case RoleDeliveryPerson:
		id, idErr := kernel.UUIDFromString(claims.DeliveryPersonID)
		if idErr != nil {
			return Principal{}, fmt.Errorf("%w: delivery_person_id: %w", ErrUnauthenticated, idErr)
		}
		principal.DeliveryPersonID = &id
	default:
		return Principal{}, fmt.Errorf("%w: unknown role %q", ErrUnauthenticated, claims.Role)
	}
	return principal, nil
}

// Middleware authenticates the bearer token of protected routes and enforces
// the capability table. It must run after routing so that c.Path() is the route.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, protected := allowedRoles(c.Request().Method, c.Path())
			if !protected {
				return next(c)
			}

			scheme, token, ok := strings.Cut(c.Request().Header.Get(echo.HeaderAuthorization), " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return ErrUnauthenticated
			}

			principal, err := a.Parse(strings.TrimSpace(token))
			if err != nil {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return err
			}
			if !slices.Contains(roles, principal.Role) {
				return fmt.Errorf("%w: %s %s", ErrForbidden, c.Request().Method, c.Path())
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the caller authenticated by Middleware.
func PrincipalFrom(c echo.Context) (Principal, bool) {
	principal, ok := c.Get(principalKey).(Principal)
	return principal, ok
}

func requirePrincipal(c echo.Context) (Principal, error) {
	principal, ok := PrincipalFrom(c)
	if !ok {
		return Principal{}, echo.NewHTTPError(http.StatusUnauthorized, ErrUnauthenticated.Error())
	}
	return principal, nil
}
