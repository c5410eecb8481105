// Package employee manages the roster: creation with generated credentials,
// updates, deletion and bulk balance adjustments.
package employee

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/employee"
	"github.com/cmlabs-hris/leave-extractor-go/internal/pkg/arabic"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo employee.Repository
	log  *slog.Logger
}

func NewService(repo employee.Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, log: log}
}

// List returns the roster in stored (Arabic dictionary) order.
func (s *Service) List(ctx context.Context) ([]employee.Employee, error) {
	return s.repo.List(ctx)
}

// Create adds a roster entry and returns it along with the plaintext
// password, which is only available at creation time because the stored
// copy is hashed.
func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, string, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return employee.Employee{}, "", employee.ErrEmptyName
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = generateUsername()
	}
	password := strings.TrimSpace(req.Password)
	if password == "" {
		password = generatePassword(7)
	}

	roster, err := s.repo.List(ctx)
	if err != nil {
		return employee.Employee{}, "", err
	}
	if usernameTaken(roster, username, "") {
		return employee.Employee{}, "", employee.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return employee.Employee{}, "", fmt.Errorf("hash password: %w", err)
	}

	workdayHours := req.WorkdayHours
	if workdayHours == 0 {
		workdayHours = employee.DefaultWorkdayHours
	}

	emp := employee.Employee{
		ID:                 uuid.NewString(),
		Name:               name,
		Balance:            req.Balance,
		Username:           username,
		Password:           string(hash),
		Photo:              req.Photo,
		PriorHourlyBalance: req.PriorHourlyBalance,
		WorkdayHours:       workdayHours,
	}

	roster = append(roster, emp)
	sortRoster(roster)
	if err := s.repo.Save(ctx, roster); err != nil {
		return employee.Employee{}, "", err
	}

	s.log.Info("employee added", slog.String("id", emp.ID), slog.String("username", emp.Username))
	return emp, password, nil
}

// Update rewrites the entry with the given id.
func (s *Service) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	name := strings.TrimSpace(req.Name)
	username := strings.TrimSpace(req.Username)
	if name == "" {
		return employee.Employee{}, employee.ErrEmptyName
	}

	roster, err := s.repo.List(ctx)
	if err != nil {
		return employee.Employee{}, err
	}

	idx := -1
	for i := range roster {
		if roster[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if username != "" && usernameTaken(roster, username, id) {
		return employee.Employee{}, employee.ErrUsernameTaken
	}

	emp := &roster[idx]
	emp.Name = name
	emp.Balance = req.Balance
	emp.PriorHourlyBalance = req.PriorHourlyBalance
	if username != "" {
		emp.Username = username
	}
	if req.WorkdayHours != 0 {
		emp.WorkdayHours = req.WorkdayHours
	}
	if req.Photo != nil {
		emp.Photo = req.Photo
	}
	if password := strings.TrimSpace(req.Password); password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("hash password: %w", err)
		}
		emp.Password = string(hash)
	}

	updated := *emp
	sortRoster(roster)
	if err := s.repo.Save(ctx, roster); err != nil {
		return employee.Employee{}, err
	}
	return updated, nil
}

// Delete removes the entry with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	roster, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	kept := roster[:0:0]
	for _, emp := range roster {
		if emp.ID != id {
			kept = append(kept, emp)
		}
	}
	if len(kept) == len(roster) {
		return employee.ErrEmployeeNotFound
	}
	return s.repo.Save(ctx, kept)
}

// DeductAll subtracts days from every balance, as the periodic correction
// run does. Balances may go negative.
func (s *Service) DeductAll(ctx context.Context, days int) error {
	roster, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for i := range roster {
		roster[i].Balance -= days
	}
	if err := s.repo.Save(ctx, roster); err != nil {
		return err
	}
	s.log.Info("balances adjusted", slog.Int("days", days), slog.Int("employees", len(roster)))
	return nil
}

// Authenticate checks a username/password pair against the roster.
func (s *Service) Authenticate(ctx context.Context, username, password string) (employee.Employee, error) {
	roster, err := s.repo.List(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	for _, emp := range roster {
		if !strings.EqualFold(emp.Username, username) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(password)) == nil {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func usernameTaken(roster []employee.Employee, username, excludeID string) bool {
	for _, emp := range roster {
		if emp.ID != excludeID && strings.EqualFold(emp.Username, username) {
			return true
		}
	}
	return false
}

func sortRoster(roster []employee.Employee) {
	col := arabic.NewCollator()
	sort.SliceStable(roster, func(i, j int) bool {
		return col.CompareString(roster[i].Name, roster[j].Name) < 0
	})
}

func generateUsername() string {
	return fmt.Sprintf("%02d", rand.IntN(100))
}

const passwordChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func generatePassword(length int) string {
	var b strings.Builder
	for range length {
		b.WriteByte(passwordChars[rand.IntN(len(passwordChars))])
	}
	return b.String()
}
