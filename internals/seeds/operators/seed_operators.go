// file: internals/seeds/operators/seed_operators.go
package operators

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	model "netku_backend/internals/features/users/auth/model"
)

// SeedDefaultOperator bikin akun admin pertama kalau tabel masih kosong.
// Password dari ENV SEED_ADMIN_PASSWORD; tanpa ENV itu seed dilewati
// (jangan pernah hardcode kredensial).
func SeedDefaultOperator(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.Operator{}).Count(&count).Error; err != nil {
		log.Printf("[SEED] operators: count gagal: %v", err)
		return
	}
	if count > 0 {
		return
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Println("[SEED] operators: SEED_ADMIN_PASSWORD kosong — skip")
		return
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[SEED] operators: hash gagal: %v", err)
		return
	}

	op := model.Operator{
		OperatorUsername:     "admin",
		OperatorPasswordHash: string(hashed),
		OperatorName:         "Administrator",
		OperatorIsActive:     true,
	}
	if err := db.Create(&op).Error; err != nil {
		log.Printf("[SEED] operators: create gagal: %v", err)
		return
	}
	log.Println("[SEED] operators: admin dibuat ✅")
}
