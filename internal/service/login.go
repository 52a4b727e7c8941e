package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/inkpress/erp-gateway/internal/core"
	"github.com/inkpress/erp-gateway/internal/domain/model"
)

// loginProcs maps each partition to its login procedure. Both take the same
// two credentials; the sites differ only in procedure naming.
var loginProcs = map[model.Partition]string{
	model.PartitionKOL: "usp_user_login_v2",
	model.PartitionAHM: "usp_UserLogin",
}

// LoginRejectedError is returned when the login procedure answers with a
// status-only row instead of a user record. The message is the procedure's
// own rejection text.
type LoginRejectedError struct {
	Message string
}

func (e *LoginRejectedError) Error() string {
	return e.Message
}

// LoginServiceOptions groups dependencies for LoginService.
type LoginServiceOptions struct {
	Invoker   core.ProcedureInvoker // Required: procedure invoker
	Directory core.DocumentStore    // Optional: user directory store
	Logger    *slog.Logger          // Optional: structured logger
}

// LoginService checks credentials through the partition's login procedure and
// keeps a directory record of the last successful login per user.
type LoginService struct {
	invoker   core.ProcedureInvoker
	directory core.DocumentStore
	logger    *slog.Logger
}

// NewLoginService constructs a new LoginService.
func NewLoginService(opts LoginServiceOptions) (*LoginService, error) {
	if opts.Invoker == nil {
		return nil, errors.New("ProcedureInvoker is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "login_service")
	}

	return &LoginService{
		invoker:   opts.Invoker,
		directory: opts.Directory,
		logger:    logger,
	}, nil
}

// Login runs the credential check and reshapes the result row into a user
// record. A status-only result is a rejection, not a transport failure.
func (s *LoginService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	op := model.Operation{
		Proc: loginProcs[req.Database],
		Params: []model.NamedParam{
			{Name: "UserName", Value: req.Username},
			{Name: "Password", Value: req.Password},
		},
	}

	result, err := s.invoker.Invoke(ctx, req.Database, op)
	if err != nil {
		return nil, err
	}

	if warning, ok := detectStatusOnly(result.Rows); ok {
		if s.logger != nil {
			s.logger.InfoContext(ctx, "login rejected",
				"username", req.Username, "target", req.Database, "status", warning.StatusValue)
		}
		return nil, &LoginRejectedError{Message: warning.StatusValue}
	}
	if len(result.Rows) == 0 {
		return nil, &LoginRejectedError{Message: "invalid credentials"}
	}

	user := reshapeUser(result.Rows[0], req.Database)
	now := time.Now()
	user.LastLoginAt = &now

	if s.directory != nil {
		doc, err := toDocument(user)
		if err == nil {
			key := string(req.Database) + ":" + strings.ToLower(req.Username)
			if err := s.directory.Upsert(ctx, "users", key, doc); err != nil && s.logger != nil {
				// Directory is advisory; a failed upsert never fails the login.
				s.logger.WarnContext(ctx, "user directory upsert failed",
					"username", req.Username, "error", err)
			}
		}
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "login succeeded",
			"username", req.Username, "target", req.Database, "user_id", user.UserID)
	}
	return user, nil
}

// reshapeUser pulls the directory fields from the login procedure's row.
// Column naming differs between the two schemas, so each field tries the v2
// name first and falls back to the legacy one.
func reshapeUser(row model.Row, target model.Partition) *model.User {
	user := &model.User{Partition: target}

	if v, ok := rowInt(row, "UserID", "user_id"); ok {
		user.UserID = v
	}
	if v, ok := rowString(row, "UserName", "user_name"); ok {
		user.UserName = v
	}
	if v, ok := rowInt(row, "EmployeeID", "employee_id"); ok {
		user.EmployeeID = v
	}
	if v, ok := rowString(row, "Role", "role"); ok {
		user.Role = v
	}
	return user
}

func rowInt(row model.Row, names ...string) (int64, bool) {
	for _, name := range names {
		if v, ok := row[name]; ok {
			return coerceInt64(v)
		}
	}
	return 0, false
}

func rowString(row model.Row, names ...string) (string, bool) {
	for _, name := range names {
		if v, ok := row[name]; ok {
			return fmt.Sprint(v), true
		}
	}
	return "", false
}
