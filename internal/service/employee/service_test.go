package employee

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	roster []employee.Employee
}

func (f *fakeRepo) List(context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, len(f.roster))
	copy(out, f.roster)
	return out, nil
}

func (f *fakeRepo) Save(_ context.Context, employees []employee.Employee) error {
	f.roster = employees
	return nil
}

func TestCreate_GeneratesCredentialsAndSortsRoster(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{roster: []employee.Employee{
		{ID: "1", Name: "ياسر فائز جاسم", Username: "101"},
	}}
	svc := NewService(repo, nil)

	// Arrange & Act
	emp, plain, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:    "احمد سمير محمد",
		Balance: 30,
	})

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, emp.ID)
	assert.Len(t, emp.Username, 2)
	assert.Len(t, plain, 7)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(plain)))
	assert.Equal(t, employee.DefaultWorkdayHours, emp.WorkdayHours)

	// New entry sorts ahead of the existing one in Arabic order.
	require.Len(t, repo.roster, 2)
	assert.Equal(t, "احمد سمير محمد", repo.roster[0].Name)
	assert.Equal(t, "ياسر فائز جاسم", repo.roster[1].Name)
}

func TestCreate_UsernameUniquenessIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{roster: []employee.Employee{
		{ID: "1", Name: "ياسر فائز جاسم", Username: "Ab1"},
	}}
	svc := NewService(repo, nil)

	_, _, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:     "احمد سمير محمد",
		Username: "aB1",
	})

	assert.ErrorIs(t, err, employee.ErrUsernameTaken)
}

func TestCreate_RequiresName(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeRepo{}, nil)

	_, _, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{Name: "   "})

	assert.ErrorIs(t, err, employee.ErrEmptyName)
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{roster: []employee.Employee{
		{ID: "1", Name: "احمد سمير محمد", Username: "101", Password: "hash", Balance: 30},
		{ID: "2", Name: "باسم عباس حسين", Username: "102"},
	}}
	svc := NewService(repo, nil)

	updated, err := svc.Update(context.Background(), "1", employee.UpdateEmployeeRequest{
		Name:     "احمد سمير محمد",
		Balance:  25,
		Username: "103",
	})

	require.NoError(t, err)
	assert.Equal(t, 25, updated.Balance)
	assert.Equal(t, "103", updated.Username)
	// Blank password keeps the stored hash.
	assert.Equal(t, "hash", updated.Password)

	_, err = svc.Update(context.Background(), "1", employee.UpdateEmployeeRequest{
		Name:     "احمد سمير محمد",
		Username: "102",
	})
	assert.ErrorIs(t, err, employee.ErrUsernameTaken)

	_, err = svc.Update(context.Background(), "no-such-id", employee.UpdateEmployeeRequest{Name: "x"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{roster: []employee.Employee{
		{ID: "1", Name: "احمد سمير محمد"},
		{ID: "2", Name: "باسم عباس حسين"},
	}}
	svc := NewService(repo, nil)

	require.NoError(t, svc.Delete(context.Background(), "1"))
	require.Len(t, repo.roster, 1)
	assert.Equal(t, "2", repo.roster[0].ID)

	assert.ErrorIs(t, svc.Delete(context.Background(), "1"), employee.ErrEmployeeNotFound)
}

func TestDeductAll(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{roster: []employee.Employee{
		{ID: "1", Name: "احمد سمير محمد", Balance: 3},
		{ID: "2", Name: "باسم عباس حسين", Balance: 30},
	}}
	svc := NewService(repo, nil)

	require.NoError(t, svc.DeductAll(context.Background(), 5))

	assert.Equal(t, -2, repo.roster[0].Balance)
	assert.Equal(t, 25, repo.roster[1].Balance)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret7"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo := &fakeRepo{roster: []employee.Employee{
		{ID: "1", Name: "احمد سمير محمد", Username: "101", Password: string(hash)},
	}}
	svc := NewService(repo, nil)

	emp, err := svc.Authenticate(context.Background(), "101", "secret7")
	require.NoError(t, err)
	assert.Equal(t, "1", emp.ID)

	_, err = svc.Authenticate(context.Background(), "101", "wrong")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
