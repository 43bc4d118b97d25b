package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/wfunc/hand-recorder/internal/config"
	"github.com/wfunc/hand-recorder/internal/hand"
	"github.com/wfunc/hand-recorder/internal/models"
	"github.com/wfunc/hand-recorder/internal/utils"
	ws "github.com/wfunc/hand-recorder/internal/websocket"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testPasscode = "test-passcode"

// APITestSuite 完整路由的集成测试
type APITestSuite struct {
	suite.Suite
	engine *gin.Engine
	token  string
}

func (s *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(&models.HandRecord{}))

	hash, err := utils.HashPassword(testPasscode)
	s.Require().NoError(err)

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		Security: config.SecurityConfig{
			JWT: config.JWTConfig{
				Secret:       "test-secret",
				ExpireHours:  1,
				RefreshHours: 24,
			},
			Passcode: hash,
		},
	}

	manager := hand.NewManager(&hand.ManagerConfig{Logger: zap.NewNop()})
	hub := ws.NewHub(zap.NewNop())
	go hub.Run()

	router := NewRouter(db, manager, hub, cfg, zap.NewNop())
	s.engine = router.GetEngine()
	s.token = s.login()
}

// login 换取访问令牌
func (s *APITestSuite) login() string {
	w := s.request("POST", "/api/v1/auth/login", map[string]string{
		"passcode": testPasscode,
	}, "")
	s.Require().Equal(http.StatusOK, w.Code)

	var resp map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	token, _ := resp["access_token"].(string)
	s.Require().NotEmpty(token)
	return token
}

func (s *APITestSuite) request(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		buf = bytes.NewBuffer(data)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *APITestSuite) authed(method, path string, body interface{}) *httptest.ResponseRecorder {
	return s.request(method, path, body, s.token)
}

func (s *APITestSuite) TestHealthCheck() {
	w := s.request("GET", "/health", nil, "")
	s.Equal(http.StatusOK, w.Code)

	var resp map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("healthy", resp["status"])
}

func (s *APITestSuite) TestLoginWrongPasscode() {
	w := s.request("POST", "/api/v1/auth/login", map[string]string{
		"passcode": "wrong",
	}, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestAuthRequired() {
	w := s.request("POST", "/api/v1/sessions", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)

	w = s.request("GET", "/api/v1/hands", nil, "invalid-token")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APITestSuite) TestSessionFlow() {
	// 创建会话
	w := s.authed("POST", "/api/v1/sessions", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var snap hand.Snapshot
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &snap))
	s.Require().NotEmpty(snap.SessionID)
	base := "/api/v1/sessions/" + snap.SessionID

	// 配置座位
	w = s.authed("PUT", base+"/seats", map[string]interface{}{
		"seats":     []string{"BTN", "SB", "BB"},
		"hero_seat": "BTN",
	})
	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &snap))
	s.Equal(hand.SeatBTN, snap.CurrentActor)

	// 记录动作
	w = s.authed("POST", base+"/actions", map[string]string{
		"kind":   "Raise",
		"amount": "6",
	})
	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &snap))
	s.Equal([]string{"BTN: Raise 6"}, snap.Actions[hand.StreetPreflop])
	s.Equal(hand.SeatSB, snap.CurrentActor)

	// 切换街
	w = s.authed("PUT", base+"/street", map[string]string{"street": "flop"})
	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &snap))
	s.Equal(hand.StreetFlop, snap.Street)
	s.Equal(hand.SeatSB, snap.CurrentActor)

	// 撤销空街被拒绝且带原因文本
	w = s.authed("POST", base+"/undo", nil)
	s.Require().Equal(http.StatusBadRequest, w.Code)
	var errResp ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &errResp))
	s.Equal("VALIDATION_FAILED", errResp.Code)
	s.Equal("nothing to undo", errResp.Message)

	// 保存牌局
	w = s.authed("POST", base+"/save", map[string]interface{}{
		"hero_cards": []string{"A♠", "K♦"},
		"blinds":     "1/2",
		"stack":      "200",
	})
	s.Require().Equal(http.StatusOK, w.Code)

	var record models.HandRecord
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &record))
	s.NotZero(record.ID)
	s.Equal("BTN", record.Position)

	// 历史列表包含刚保存的记录
	w = s.authed("GET", "/api/v1/hands", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var list HandListResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	s.Equal(int64(1), list.Total)

	// 查询和删除单条记录
	w = s.authed("GET", fmt.Sprintf("/api/v1/hands/%d", record.ID), nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.authed("DELETE", fmt.Sprintf("/api/v1/hands/%d", record.ID), nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.authed("GET", fmt.Sprintf("/api/v1/hands/%d", record.ID), nil)
	s.Equal(http.StatusNotFound, w.Code)

	// 结束会话
	w = s.authed("DELETE", base, nil)
	s.Equal(http.StatusOK, w.Code)
	w = s.authed("GET", base, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *APITestSuite) TestSaveHandValidation() {
	w := s.authed("POST", "/api/v1/sessions", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var snap hand.Snapshot
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &snap))
	base := "/api/v1/sessions/" + snap.SessionID

	w = s.authed("PUT", base+"/seats", map[string]interface{}{
		"seats": []string{"SB", "BB"},
	})
	s.Require().Equal(http.StatusOK, w.Code)

	// Hero牌不完整
	w = s.authed("POST", base+"/save", map[string]interface{}{
		"hero_cards": []string{"A♠"},
		"blinds":     "1/2",
	})
	s.Require().Equal(http.StatusBadRequest, w.Code)
	var errResp ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &errResp))
	s.Equal("hero cards incomplete", errResp.Message)

	// 缺少盲注
	w = s.authed("POST", base+"/save", map[string]interface{}{
		"hero_cards": []string{"A♠", "K♦"},
	})
	s.Require().Equal(http.StatusBadRequest, w.Code)
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &errResp))
	s.Equal("blinds required", errResp.Message)
}

func (s *APITestSuite) TestInvalidSeatAndStreet() {
	w := s.authed("POST", "/api/v1/sessions", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var snap hand.Snapshot
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &snap))
	base := "/api/v1/sessions/" + snap.SessionID

	w = s.authed("PUT", base+"/seats", map[string]interface{}{
		"seats": []string{"BTN", "MP"},
	})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.authed("PUT", base+"/street", map[string]string{"street": "showdown"})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *APITestSuite) TestSessionNotFound() {
	w := s.authed("GET", "/api/v1/sessions/no-such-id", nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.authed("POST", "/api/v1/sessions/no-such-id/actions", map[string]string{
		"kind": "Check",
	})
	s.Equal(http.StatusNotFound, w.Code)
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
