package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient interface.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	mockArgs := []any{ctx, repoPath}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// GetRepoRoot implements the GitClient interface.
func (m *MockGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	ret := m.Called(ctx, contextPath)
	root, _ := ret.Get(0).(string)
	return root, ret.Error(1)
}

// GetCommitLog implements the GitClient interface.
func (m *MockGitClient) GetCommitLog(ctx context.Context, repoPath string, limit int) ([]byte, error) {
	ret := m.Called(ctx, repoPath, limit)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// GetCommitDiffStat implements the GitClient interface.
func (m *MockGitClient) GetCommitDiffStat(ctx context.Context, repoPath string, hash string) ([]byte, error) {
	ret := m.Called(ctx, repoPath, hash)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}
