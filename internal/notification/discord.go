package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/geosentry/landcover-cli/internal/properties"
)

type DiscordMessage struct {
	Embeds []DiscordEmbed `json:"embeds"`
}

type DiscordEmbed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
}

func send(webhookURL, title, description string, color int) error {
	if webhookURL == "" {
		// notifications are optional; an unset webhook is not an error
		return nil
	}

	payload, err := json.Marshal(DiscordMessage{
		Embeds: []DiscordEmbed{{Title: title, Description: description, Color: color}},
	})
	if err != nil {
		return err
	}

	resp, err := http.Post(webhookURL, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to send Discord notification, status code: %d", resp.StatusCode)
	}
	return nil
}

func SendDiscordErrorNotification(errorMessage string) error {
	return send(properties.DiscordErrorNotificationUrl(),
		"🚨 Landcover Pipeline Error",
		fmt.Sprintf("An error occurred: %s", errorMessage),
		16711680) // red
}

func SendDiscordSuccessNotification(successMessage string) error {
	return send(properties.DiscordSuccessNotificationUrl(),
		"✅ Landcover Pipeline",
		successMessage,
		65280) // green
}

func SendDiscordWarnNotification(warnMessage string) error {
	return send(properties.DiscordWarnNotificationUrl(),
		"⚠️ Landcover Pipeline Warning",
		warnMessage,
		16753920) // orange
}
