package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	customerDomain "loanflow-service/internal/domain/customer"
	identityDomain "loanflow-service/internal/domain/identity"
	"loanflow-service/internal/domain/uow"
	"loanflow-service/pkg/id"
)

type Usecase struct {
	identities identityDomain.Store
	customers  customerDomain.Repository
	uow        uow.UnitOfWork
	secret     []byte
	ttl        time.Duration
	log        *zap.Logger
}

func NewUsecase(ids identityDomain.Store, customers customerDomain.Repository, tx uow.UnitOfWork, secret string, ttl time.Duration, log *zap.Logger) *Usecase {
	return &Usecase{identities: ids, customers: customers, uow: tx, secret: []byte(secret), ttl: ttl, log: log}
}

// Claims carried in the bearer token.
type Claims struct {
	AuthID string `json:"auth_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SignUp creates the auth identity and the customer record in one
// transaction; a half-created account is not a state this system has.
func (u *Usecase) SignUp(ctx context.Context, in SignUpInput) (*SessionDTO, error) {
	if _, err := u.identities.GetByEmail(ctx, in.Email); err == nil {
		return nil, identityDomain.ErrEmailTaken
	} else if !errors.Is(err, identityDomain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	authUser := &identityDomain.AuthUser{
		AuthID:       id.NewID32(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         identityDomain.RoleCustomer,
	}
	cust := &customerDomain.Customer{
		CustomerID: id.NewID32(),
		AuthID:     authUser.AuthID,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Phone:      in.Phone,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Identities.Create(ctx, authUser); err != nil {
			return err
		}
		return r.Customers.Create(ctx, cust)
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("customer signed up", zap.String("customer_id", cust.CustomerID))

	return u.session(authUser, cust.CustomerID)
}

// SignIn verifies credentials and issues a bearer token. There is no server
// session; sign-out is the client dropping the token.
func (u *Usecase) SignIn(ctx context.Context, email, password string) (*SessionDTO, error) {
	authUser, err := u.identities.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, identityDomain.ErrNotFound) {
			return nil, identityDomain.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(authUser.PasswordHash), []byte(password)) != nil {
		return nil, identityDomain.ErrInvalidCredentials
	}

	customerID := ""
	if c, err := u.customers.GetByAuthID(ctx, authUser.AuthID); err == nil {
		customerID = c.CustomerID
	}
	return u.session(authUser, customerID)
}

func (u *Usecase) session(authUser *identityDomain.AuthUser, customerID string) (*SessionDTO, error) {
	now := time.Now().UTC()
	claims := Claims{
		AuthID: authUser.AuthID,
		Role:   authUser.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   authUser.AuthID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return nil, err
	}
	return &SessionDTO{
		Token:      token,
		AuthID:     authUser.AuthID,
		CustomerID: customerID,
		Email:      authUser.Email,
		Role:       authUser.Role,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}

// ParseToken validates a bearer token and returns its claims.
func (u *Usecase) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return u.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, identityDomain.ErrInvalidCredentials
	}
	return claims, nil
}
