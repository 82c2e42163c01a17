package utils

import (
	"context"
	"log"
	"os"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

var fcmClient *messaging.Client

// InitFCM menginisialisasi koneksi ke Firebase.
// Kalau file credential tidak ada, notifikasi jadi no-op — server tetap
// jalan normal (push notification memang fitur opsional).
func InitFCM() {
	serviceAccountPath := os.Getenv("FIREBASE_CREDENTIALS")
	if serviceAccountPath == "" {
		serviceAccountPath = "klinik-firebase.json"
	}

	if _, err := os.Stat(serviceAccountPath); err != nil {
		log.Println("Warning: credential Firebase tidak ditemukan, push notification dimatikan")
		return
	}

	opt := option.WithCredentialsFile(serviceAccountPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		log.Printf("Error initializing firebase app: %v", err)
		return
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		log.Printf("Error getting messaging client: %v", err)
		return
	}

	fcmClient = client
	log.Println("🔥 Firebase Cloud Messaging Ready!")
}

// SendNotification mengirim pesan ke satu device (FCM Token).
// Fire-and-forget: error cuma di-log, tidak pernah mengganggu operasi utama.
func SendNotification(token string, title string, body string, data map[string]string) error {
	if fcmClient == nil || token == "" {
		return nil
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data, // Data tambahan (misal: appointment_id: "12")
	}

	_, err := fcmClient.Send(context.Background(), message)
	if err != nil {
		log.Printf("Error sending message: %s", err)
		return err
	}
	return nil
}
