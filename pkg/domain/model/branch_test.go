package model_test

import (
	"testing"

	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestNewBranchSelection(t *testing.T) {
	t.Run("master is selected when present", func(t *testing.T) {
		sel := model.NewBranchSelection([]types.BranchName{"dev", "master", "main"})
		gt.V(t, sel.Selected).Equal(types.BranchName("master"))
		gt.V(t, sel.Branches).Equal([]types.BranchName{"dev", "master", "main"})
		gt.True(t, sel.Contains("dev"))
		gt.False(t, sel.Contains("release"))
	})

	t.Run("nothing is selected without master", func(t *testing.T) {
		sel := model.NewBranchSelection([]types.BranchName{"main", "dev"})
		gt.V(t, sel.Selected).Equal(types.BranchName(""))
	})

	t.Run("nil branches becomes empty set", func(t *testing.T) {
		sel := model.NewBranchSelection(nil)
		gt.V(t, len(sel.Branches)).Equal(0)
		gt.V(t, sel.Branches == nil).Equal(false)
		gt.V(t, sel.Selected).Equal(types.BranchName(""))
	})
}
