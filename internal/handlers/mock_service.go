package handlers

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"hvac_reward"
	"hvac_reward/internal/models"
	"hvac_reward/internal/service"
)

// mockAuth resolves bearer tokens through tokens when set, otherwise every
// token maps to parseID.
type mockAuth struct {
	signUpID  int
	signUpErr error
	token     string
	tokenErr  error
	tokens    map[string]int
	parseID   int
	parseErr  error

	lastUsername string
	lastPassword string
	lastToken    string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.lastUsername, m.lastPassword = username, password
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastUsername, m.lastPassword = username, password
	return m.token, m.tokenErr
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastToken = token
	if m.tokens != nil {
		id, ok := m.tokens[token]
		if !ok {
			return 0, service.ErrInvalidToken
		}
		return id, nil
	}
	return m.parseID, m.parseErr
}

type mockReward struct {
	rec      models.RewardRecord
	recs     []models.RewardRecord
	err      error
	lastInfo hvac_reward.RewardInfo
	lastN    int
	lastUser int
}

func (m *mockReward) Compute(_ context.Context, userID int, info hvac_reward.RewardInfo) (models.RewardRecord, error) {
	m.lastUser = userID
	m.lastInfo = info
	return m.rec, m.err
}

func (m *mockReward) ComputeBatch(_ context.Context, userID int, infos []hvac_reward.RewardInfo) ([]models.RewardRecord, error) {
	m.lastUser = userID
	m.lastN = len(infos)
	return m.recs, m.err
}

type mockHistory struct {
	mu sync.Mutex

	list       []models.RewardRecord
	latest     *models.RewardRecord
	export     []byte
	err        error
	lastFilter models.RewardFilter
	lastAgent  string
}

func (m *mockHistory) List(_ context.Context, f models.RewardFilter) ([]models.RewardRecord, error) {
	m.lastFilter = f
	return m.list, m.err
}

func (m *mockHistory) Latest(_ context.Context, agentID string) (*models.RewardRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastAgent = agentID
	return m.latest, m.err
}

func (m *mockHistory) Export(_ context.Context, f models.RewardFilter) ([]byte, error) {
	m.lastFilter = f
	return m.export, m.err
}

func (m *mockHistory) setLatest(rec *models.RewardRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latest = rec
}

type mockInventory struct {
	inv      *models.Inventory
	err      error
	lastReg  models.Inventory
	lastUser int
}

func (m *mockInventory) Register(_ context.Context, userID int, inv models.Inventory) (models.Inventory, error) {
	m.lastUser = userID
	m.lastReg = inv
	if m.err != nil {
		return models.Inventory{}, m.err
	}
	inv.OwnerID = userID
	return inv, nil
}

func (m *mockInventory) Lookup(_ context.Context, _ string) (*models.Inventory, error) {
	return m.inv, m.err
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
