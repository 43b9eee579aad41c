package http

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/linkstats/internal/entity"
)

var aliasPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func newValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("alias", func(fl validator.FieldLevel) bool {
		return aliasPattern.MatchString(fl.Field().String())
	})

	return validate
}

// shortenRequest represents the structure for a request to shorten a URL.
type shortenRequest struct {
	OriginalURL string `json:"original_url" validate:"required,url"`
	CustomAlias string `json:"custom_alias" validate:"omitempty,min=3,max=32,alias"`
	Topic       string `json:"topic" validate:"omitempty,oneof=acquisition activation retention"`
}

type linkResponse struct {
	ID          int64     `json:"id"`
	Alias       string    `json:"alias"`
	ShortURL    string    `json:"short_url"`
	OriginalURL string    `json:"original_url"`
	Topic       string    `json:"topic"`
	CreatedAt   time.Time `json:"created_at"`
}

func toLinkResponse(link *entity.Link, baseURL string) linkResponse {
	return linkResponse{
		ID:          link.ID,
		Alias:       link.Alias,
		ShortURL:    entity.ShortURL(baseURL, link.Alias),
		OriginalURL: link.OriginalURL,
		Topic:       string(link.Topic),
		CreatedAt:   link.CreatedAt,
	}
}

type dailyClicks struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type osBreakdown struct {
	OSName       string `json:"os_name"`
	UniqueClicks int    `json:"unique_clicks"`
	UniqueUsers  int    `json:"unique_users"`
}

type deviceBreakdown struct {
	DeviceName   string `json:"device_name"`
	UniqueClicks int    `json:"unique_clicks"`
	UniqueUsers  int    `json:"unique_users"`
}

type linkClicks struct {
	ShortURL     string `json:"short_url"`
	TotalClicks  int    `json:"total_clicks"`
	UniqueClicks int    `json:"unique_clicks"`
}

type aliasAnalyticsResponse struct {
	TotalClicks  int               `json:"total_clicks"`
	UniqueClicks int               `json:"unique_clicks"`
	ClicksByDate []dailyClicks     `json:"clicks_by_date"`
	OSType       []osBreakdown     `json:"os_type"`
	DeviceType   []deviceBreakdown `json:"device_type"`
}

type topicAnalyticsResponse struct {
	TotalClicks  int           `json:"total_clicks"`
	UniqueClicks int           `json:"unique_clicks"`
	ClicksByDate []dailyClicks `json:"clicks_by_date"`
	URLs         []linkClicks  `json:"urls"`
}

type accountAnalyticsResponse struct {
	TotalURLs    int               `json:"total_urls"`
	TotalClicks  int               `json:"total_clicks"`
	UniqueClicks int               `json:"unique_clicks"`
	ClicksByDate []dailyClicks     `json:"clicks_by_date"`
	OSType       []osBreakdown     `json:"os_type"`
	DeviceType   []deviceBreakdown `json:"device_type"`
}

func toDailyClicks(series []entity.DailyClicks) []dailyClicks {
	out := make([]dailyClicks, 0, len(series))
	for _, d := range series {
		out = append(out, dailyClicks{Date: d.Date, Count: d.Count})
	}
	return out
}

func toOSBreakdown(breakdown []entity.Breakdown) []osBreakdown {
	out := make([]osBreakdown, 0, len(breakdown))
	for _, b := range breakdown {
		out = append(out, osBreakdown{
			OSName:       b.Label,
			UniqueClicks: b.UniqueClicks,
			UniqueUsers:  b.UniqueUsers,
		})
	}
	return out
}

func toDeviceBreakdown(breakdown []entity.Breakdown) []deviceBreakdown {
	out := make([]deviceBreakdown, 0, len(breakdown))
	for _, b := range breakdown {
		out = append(out, deviceBreakdown{
			DeviceName:   b.Label,
			UniqueClicks: b.UniqueClicks,
			UniqueUsers:  b.UniqueUsers,
		})
	}
	return out
}

func toAliasAnalyticsResponse(s *entity.AliasSummary) aliasAnalyticsResponse {
	return aliasAnalyticsResponse{
		TotalClicks:  s.TotalClicks,
		UniqueClicks: s.UniqueClicks,
		ClicksByDate: toDailyClicks(s.ClicksByDate),
		OSType:       toOSBreakdown(s.OSType),
		DeviceType:   toDeviceBreakdown(s.DeviceType),
	}
}

func toTopicAnalyticsResponse(s *entity.TopicSummary) topicAnalyticsResponse {
	urls := make([]linkClicks, 0, len(s.URLs))
	for _, u := range s.URLs {
		urls = append(urls, linkClicks{
			ShortURL:     u.ShortURL,
			TotalClicks:  u.TotalClicks,
			UniqueClicks: u.UniqueClicks,
		})
	}

	return topicAnalyticsResponse{
		TotalClicks:  s.TotalClicks,
		UniqueClicks: s.UniqueClicks,
		ClicksByDate: toDailyClicks(s.ClicksByDate),
		URLs:         urls,
	}
}

func toAccountAnalyticsResponse(s *entity.AccountSummary) accountAnalyticsResponse {
	return accountAnalyticsResponse{
		TotalURLs:    s.TotalURLs,
		TotalClicks:  s.TotalClicks,
		UniqueClicks: s.UniqueClicks,
		ClicksByDate: toDailyClicks(s.ClicksByDate),
		OSType:       toOSBreakdown(s.OSType),
		DeviceType:   toDeviceBreakdown(s.DeviceType),
	}
}
