package http

import (
	"errors"
	"net/http"

	"github.com/stretchr/testify/mock"
	"github.com/vadimbarashkov/linkstats/internal/entity"
)

func series(counts map[int]int) []entity.DailyClicks {
	out := make([]entity.DailyClicks, 15)
	for i := range out {
		out[i] = entity.DailyClicks{Date: "2024-03-01", Count: counts[i]}
	}
	return out
}

func (suite *HandlersTestSuite) TestGetAliasAnalytics() {
	const path = "/api/v1/analytics/abc123"

	suite.Run("link not found", func() {
		suite.analyticsUseCaseMock.
			On("GetAliasAnalytics", mock.Anything, "abc123").
			Once().
			Return(nil, entity.ErrLinkNotFound)

		resp := suite.e.GET(path).
			Expect().
			Status(http.StatusNotFound).
			JSON().Object()

		resp.HasValue("status", "error")
		resp.HasValue("error", "not_found")
	})

	suite.Run("no analytics data", func() {
		suite.analyticsUseCaseMock.
			On("GetAliasAnalytics", mock.Anything, "abc123").
			Once().
			Return(nil, entity.ErrNoAnalyticsData)

		resp := suite.e.GET(path).
			Expect().
			Status(http.StatusNotFound).
			JSON().Object()

		resp.HasValue("status", "error")
		resp.HasValue("error", "no_data")
	})

	suite.Run("server error", func() {
		suite.analyticsUseCaseMock.
			On("GetAliasAnalytics", mock.Anything, "abc123").
			Once().
			Return(nil, errors.New("unknown error"))

		suite.e.GET(path).
			Expect().
			Status(http.StatusInternalServerError).
			JSON().Object().
			HasValue("error", "server_error")
	})

	suite.Run("success", func() {
		suite.analyticsUseCaseMock.
			On("GetAliasAnalytics", mock.Anything, "abc123").
			Once().
			Return(&entity.AliasSummary{
				ClickStats: entity.ClickStats{
					TotalClicks:  3,
					UniqueClicks: 2,
					ClicksByDate: series(map[int]int{14: 3}),
				},
				OSType:     []entity.Breakdown{{Label: "Windows NT 10.0", UniqueClicks: 3, UniqueUsers: 2}},
				DeviceType: []entity.Breakdown{{Label: "desktop", UniqueClicks: 3, UniqueUsers: 2}},
			}, nil)

		data := suite.e.GET(path).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("data").Object()

		data.HasValue("total_clicks", 3)
		data.HasValue("unique_clicks", 2)
		data.Value("clicks_by_date").Array().Length().IsEqual(15)
		data.Value("clicks_by_date").Array().Value(14).Object().HasValue("count", 3)
		data.Value("os_type").Array().Value(0).Object().
			HasValue("os_name", "Windows NT 10.0").
			HasValue("unique_clicks", 3).
			HasValue("unique_users", 2)
		data.Value("device_type").Array().Value(0).Object().
			HasValue("device_name", "desktop")
	})
}

func (suite *HandlersTestSuite) TestGetTopicAnalytics() {
	suite.Run("unknown topic", func() {
		resp := suite.e.GET("/api/v1/analytics/topic/unknown").
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.HasValue("error", "bad_request")
	})

	suite.Run("no links", func() {
		suite.analyticsUseCaseMock.
			On("GetTopicAnalytics", mock.Anything, entity.TopicRetention).
			Once().
			Return(nil, entity.ErrLinkNotFound)

		suite.e.GET("/api/v1/analytics/topic/retention").
			Expect().
			Status(http.StatusNotFound).
			JSON().Object().
			HasValue("error", "not_found")
	})

	suite.Run("success", func() {
		suite.analyticsUseCaseMock.
			On("GetTopicAnalytics", mock.Anything, entity.TopicAcquisition).
			Once().
			Return(&entity.TopicSummary{
				ClickStats: entity.ClickStats{
					TotalClicks:  2,
					UniqueClicks: 2,
					ClicksByDate: series(map[int]int{13: 2}),
				},
				URLs: []entity.LinkClicks{
					{Alias: "first", ShortURL: "https://sho.rt/first", TotalClicks: 2, UniqueClicks: 2},
					{Alias: "second", ShortURL: "https://sho.rt/second"},
				},
			}, nil)

		data := suite.e.GET("/api/v1/analytics/topic/acquisition").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("data").Object()

		data.HasValue("total_clicks", 2)
		data.NotContainsKey("os_type")

		urls := data.Value("urls").Array()
		urls.Length().IsEqual(2)
		urls.Value(0).Object().
			HasValue("short_url", "https://sho.rt/first").
			HasValue("total_clicks", 2)
		urls.Value(1).Object().
			HasValue("short_url", "https://sho.rt/second").
			HasValue("total_clicks", 0)
	})
}

func (suite *HandlersTestSuite) TestGetAccountAnalytics() {
	const path = "/api/v1/analytics/get/overall"

	suite.Run("missing token", func() {
		suite.e.GET(path).
			Expect().
			Status(http.StatusUnauthorized)
	})

	suite.Run("no analytics data", func() {
		suite.analyticsUseCaseMock.
			On("GetAccountAnalytics", mock.Anything, "user-1").
			Once().
			Return(nil, entity.ErrNoAnalyticsData)

		suite.e.GET(path).
			WithHeader("Authorization", "Bearer "+suite.token).
			Expect().
			Status(http.StatusNotFound).
			JSON().Object().
			HasValue("error", "no_data")
	})

	suite.Run("success", func() {
		suite.analyticsUseCaseMock.
			On("GetAccountAnalytics", mock.Anything, "user-1").
			Once().
			Return(&entity.AccountSummary{
				TotalURLs: 3,
				ClickStats: entity.ClickStats{
					TotalClicks:  3,
					UniqueClicks: 2,
					ClicksByDate: series(nil),
				},
				OSType:     []entity.Breakdown{},
				DeviceType: []entity.Breakdown{},
			}, nil)

		data := suite.e.GET(path).
			WithHeader("Authorization", "Bearer "+suite.token).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("data").Object()

		data.HasValue("total_urls", 3)
		data.HasValue("total_clicks", 3)
		data.HasValue("unique_clicks", 2)
		data.Value("os_type").Array().IsEmpty()
		data.NotContainsKey("urls")
	})
}
