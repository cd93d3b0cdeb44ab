package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/cart-tracker/internal/redissvc"
)

// SMTPSettings configures the outgoing summary mail. Alerting is
// disabled when no redis service has been set.
type SMTPSettings struct {
	From         string
	To           string
	Server       string
	Port         string
	User         string
	Password     string
	AuthDisabled bool
}

var (
	smtpSettings SMTPSettings

	rdb *redis.Client
	ctx context.Context
)

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

func SetSMTPSettings(s SMTPSettings) {
	smtpSettings = s
}

// StockEvent is one noteworthy stock occurrence: a rejected add for
// insufficient stock, or a product whose stock reached zero.
type StockEvent struct {
	Kind      string    `json:"kind"` // "insufficient_stock" | "stock_depleted"
	Code      int       `json:"code"`
	Requested int       `json:"requested,omitempty"`
	Time      time.Time `json:"time"`
}

const DailyStockLogKey = "stock:eventlog:daily"

// RecordInsufficientStock logs a rejected cart add.
func RecordInsufficientStock(code, requested int) {
	logStockEvent(StockEvent{Kind: "insufficient_stock", Code: code, Requested: requested, Time: time.Now()})
}

// RecordStockDepleted logs a product whose stock just hit zero.
func RecordStockDepleted(code int) {
	logStockEvent(StockEvent{Kind: "stock_depleted", Code: code, Time: time.Now()})
}

func logStockEvent(e StockEvent) {
	if rdb == nil {
		return
	}
	data, _ := json.Marshal(e)
	if err := rdb.RPush(ctx, DailyStockLogKey, data).Err(); err != nil {
		log.Printf("failed to record stock event: %v", err)
	}
}

func StartDailyStockSummary(interval time.Duration) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(interval)
		}
		time.Sleep(time.Until(next))
		SendDailyStockSummary()
	}
}

func SendDailyStockSummary() {
	if rdb == nil {
		return
	}
	entries, err := rdb.LRange(ctx, DailyStockLogKey, 0, -1).Result()
	if err != nil || len(entries) == 0 {
		return
	}
	_ = rdb.Del(ctx, DailyStockLogKey).Err() // clear after reading

	var events []StockEvent
	rejectionsByCode := make(map[int]int)
	depletedCodes := make(map[int]int)

	for _, item := range entries {
		var e StockEvent
		if err := json.Unmarshal([]byte(item), &e); err == nil {
			events = append(events, e)
			switch e.Kind {
			case "insufficient_stock":
				rejectionsByCode[e.Code]++
			case "stock_depleted":
				depletedCodes[e.Code]++
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("<h2>Daily Stock Summary</h2>")
	sb.WriteString(fmt.Sprintf("<p>Total events: <strong>%d</strong></p>", len(events)))

	sb.WriteString("<h3>Rejected adds (insufficient stock)</h3><ul>")
	for code, count := range rejectionsByCode {
		sb.WriteString(fmt.Sprintf("<li>product <code>%d</code>: %d</li>", code, count))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>Stock depleted</h3><ul>")
	for code, count := range depletedCodes {
		sb.WriteString(fmt.Sprintf("<li>product <code>%d</code>: %d</li>", code, count))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>Full log</h3><ul>")
	for _, e := range events {
		sb.WriteString(fmt.Sprintf("<li><b>%s</b> product %d at %s</li>",
			e.Kind, e.Code, e.Time.Format(time.RFC822)))
	}
	sb.WriteString("</ul>")

	msg := strings.Join([]string{
		"From: " + smtpSettings.From,
		"To: " + smtpSettings.To,
		"Subject: Daily Stock Report",
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		sb.String(),
	}, "\r\n")

	addr := fmt.Sprintf("%s:%s", smtpSettings.Server, smtpSettings.Port)
	auth := smtp.PlainAuth("", smtpSettings.User, smtpSettings.Password, smtpSettings.Server)
	if smtpSettings.AuthDisabled {
		auth = nil
	}

	go func() {
		err := smtp.SendMail(addr, auth, smtpSettings.From, []string{smtpSettings.To}, []byte(msg))
		if err != nil {
			log.Printf("Failed to send stock summary email: %v", err)
		} else {
			log.Println("Daily stock summary sent via SMTP.")
		}
	}()
}
