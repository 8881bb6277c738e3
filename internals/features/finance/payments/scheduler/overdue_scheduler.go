// file: internals/features/finance/payments/scheduler/overdue_scheduler.go
package scheduler

import (
	"log"
	"os"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	controller "netku_backend/internals/features/finance/payments/controller"
)

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ── ENTRYPOINT: panggil dari main.go
// Sweep harian: pending yang lewat jatuh tempo → overdue.
func StartOverdueSweepCron(db *gorm.DB) {
	schedule := getEnvOrDefault("OVERDUE_CRON_SCHEDULE", "30 0 * * *")

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(schedule, func() {
		count, err := controller.SweepOverduePayments(db)
		if err != nil {
			log.Printf("[OVERDUE-SWEEP] error: %v", err)
			return
		}
		if count > 0 {
			log.Printf("[OVERDUE-SWEEP] %d payment(s) marked overdue", count)
		}
	})
	if err != nil {
		log.Fatalf("[OVERDUE-SWEEP] add cron gagal: %v", err)
	}
	log.Printf("[OVERDUE-SWEEP] started schedule=%q", schedule)
	c.Start()
}
