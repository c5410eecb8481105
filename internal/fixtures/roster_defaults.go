// Package fixtures seeds the initial roster when the store is empty.
package fixtures

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/employee"
	"github.com/cmlabs-hris/leave-extractor-go/internal/pkg/arabic"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ==========================================
// INITIAL ROSTER
// ==========================================

var initialEmployeeNames = []string{
	"اثيب عبد الزهرة مجيد", "احمد امير حسين", "احمد سمير محمد", "احمد ناجح رزاق", "ازهر ثامر ربح", "استبرق جابر حميد", "امير خالد هادي", "انغام عبد الزهرة مجيد", "انوار فاضل طراد", "باسم عباس حسين", "باسم علي محمد", "باقر عادل احمد", "تقى عبد الحسن حمودي", "جاسم حازم محمد", "جلال حسن هادي", "حسن كريم باجي", "حسنين عبد الرزاق", "حسين علي عبد الأمير", "حكمت شوكت عبد الحمزة", "حمزة سعد حمودي", "حيدر عباس حسن", "حيدر كاظم محمد سعيد", "خليل كريم عباس", "رائد كامل عبد اليمة", "راضي حمودي سلطان", "رغد عبد الزهرة مجيد", "سجاد محمد علي طالب", "سعد حمودي سلطان", "سعيد عبد الحسن حمودي", "سهاد جابر محمد", "ضرغام جهادي خضير", "عباس سعد حمودي", "عباس كاظم عبد الاخوه", "عبد الرضا نجم عبد", "عقيل مسلم عبد المحسن", "علي باسم حسن", "علي رسول محي", "علي عبد الكريم حميد", "علي كاظم قربون", "علي محمد باجي", "عمار ناصر محمد", "غسان نزار ضياء", "قاسم محمد رضا مجيد", "كرار عدي عبد الحسين", "كواكب عزيز حمزة", "كوثر هادي عطيه", "ليث محمد علي حمودي", "مجيد محمد رضا مجيد", "محمد جواد كاظم عباس", "محمد راضي حمودي", "محمد رضا عبود", "محمد صلاح محمد", "محمد عبد الرضا تركي", "محمد علاء محمد", "محمد فاضل شاكر", "محمد محمد رضا مجيد", "مرتضى كريم موسى", "مروة محمد علي", "مسلم إبراهيم حسن", "مصطفى راضي حمودي", "مصطفى علي محمد", "مصطفى محسن يعقوب", "مها سعد حمودي", "مهدي صالح هادي", "مهند محمد رشاد جعفر", "ناجح كاظم قربون", "هدى عبد الحسن حمودي", "هناء علي عبد الرضا", "ياسر فائز جاسم", "ياسر ياسين ناجي", "ياسين رياض احمد", "زهراء طه تقي", "يحيى فارس محمد",
}

var initialEmployeeBalances = []int{
	16, 26, 38, 61, 36, 4, 14, 20, 9, 41, 33, 27, 22, 13, 54, 44, 67, 17, 26, 27, 48, 67, 51, 21, 39, 15, 10, 27, 51, 4, 19, 18, 9, 24, 6, 5, 25, 21, 30, 24, -1, 21, 6, 0, 13, -13, 27, 16, 53, 35, 51, 54, 19, 67, 5, 22, 1, 10, 26, -1, 16, 14, 11, 14, 6, 56, 28, 18, 37, -9, -6, 12,
}

var initialHourlyBalances = []float64{
	0, 2, 2, 0, 0, 3, 3, 5, 5, 6, 3, 6, 2, 0, 0, 0, 0, 3, 3, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 4, 0, 2, 5, 0, 0, 3, 4, 0, 2, 1, 4, 0, 4, 5, 2, 3, 0, 5, 2, 4, 0, 0, 1, 0, 2, 6, 3, 3, 5, 1, 5, 5, 0, 4, 3, 0, 6, 0, 0, 1, 2, 0, 5,
}

// SeedRoster writes the default roster if the store holds no employees.
// Credentials are deterministic: username 100+i, password firstName
// followed by 10+i, stored as a bcrypt hash.
func SeedRoster(ctx context.Context, repo employee.Repository, workdayHours int, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	if workdayHours <= 0 {
		workdayHours = employee.DefaultWorkdayHours
	}

	existing, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list roster: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	roster := make([]employee.Employee, 0, len(initialEmployeeNames))
	for i, name := range initialEmployeeNames {
		firstName, _, _ := strings.Cut(name, " ")
		password := fmt.Sprintf("%s%d", firstName, 10+i)
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		roster = append(roster, employee.Employee{
			ID:                 uuid.NewString(),
			Name:               name,
			Balance:            balanceAt(i),
			Username:           fmt.Sprintf("%d", 100+i),
			Password:           string(hash),
			PriorHourlyBalance: hourlyBalanceAt(i),
			WorkdayHours:       workdayHours,
		})
	}

	col := arabic.NewCollator()
	sort.SliceStable(roster, func(i, j int) bool {
		return col.CompareString(roster[i].Name, roster[j].Name) < 0
	})

	if err := repo.Save(ctx, roster); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	log.Info("seeded default roster", slog.Int("employees", len(roster)))
	return nil
}

func balanceAt(i int) int {
	if i < len(initialEmployeeBalances) {
		return initialEmployeeBalances[i]
	}
	return 0
}

func hourlyBalanceAt(i int) float64 {
	if i < len(initialHourlyBalances) {
		return initialHourlyBalances[i]
	}
	return 0
}
