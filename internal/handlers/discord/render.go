package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/announcer/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Embed colors from cool to hot as the tier climbs
const (
	colorLow     = 0x3498db // Blue
	colorMid     = 0xf1c40f // Yellow
	colorHigh    = 0xe67e22 // Orange
	colorHighest = 0xe74c3c // Red
)

// tierColor picks the embed color for a cue
func tierColor(cue models.Cue) int {
	switch rank := cue.Rank(); {
	case rank >= models.CueGodlike.Rank():
		return colorHighest
	case rank >= models.CueUnstoppable.Rank():
		return colorHigh
	case rank >= models.CueDominating.Rank():
		return colorMid
	default:
		return colorLow
	}
}

// cueLabel turns a cue id into a display label, double_kill becomes Double Kill
func cueLabel(cue models.Cue) string {
	words := strings.Split(cue.String(), "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// renderAnnouncement builds the channel embed for an announcement
func renderAnnouncement(announcement *models.Announcement) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Player",
			Value:  announcement.Player.Name,
			Inline: true,
		},
		{
			Name:   "Kills",
			Value:  fmt.Sprintf("%d", announcement.Player.Kills),
			Inline: true,
		},
	}

	if delta := announcement.Delta(); delta > 1 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "This update",
			Value:  fmt.Sprintf("+%d", delta),
			Inline: true,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       cueLabel(announcement.Cue),
		Description: announcement.Message,
		Color:       tierColor(announcement.Cue),
		Fields:      fields,
	}

	if !announcement.CreatedAt.IsZero() {
		embed.Timestamp = announcement.CreatedAt.Format(time.RFC3339)
	}

	if announcement.ID != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: "request " + announcement.ID,
		}
	}

	return embed
}
