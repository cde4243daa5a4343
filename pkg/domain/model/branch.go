package model

import "github.com/m-mizutani/ghbox/pkg/domain/types"

// BranchSelection is a result of one branch lookup. Selected is empty when the
// default branch name is not in Branches.
type BranchSelection struct {
	Branches []types.BranchName `json:"branches"`
	Selected types.BranchName   `json:"selected"`
}

// NewBranchSelection builds a selection from branch names in the order the source host returned them.
func NewBranchSelection(branches []types.BranchName) *BranchSelection {
	if branches == nil {
		branches = []types.BranchName{}
	}
	return &BranchSelection{
		Branches: branches,
		Selected: SelectDefaultBranch(branches),
	}
}

// SelectDefaultBranch returns "master" if it is in branches, otherwise empty.
func SelectDefaultBranch(branches []types.BranchName) types.BranchName {
	for _, b := range branches {
		if b == types.DefaultBranchName {
			return b
		}
	}
	return ""
}

// Contains reports whether name is one of the looked up branches.
func (x *BranchSelection) Contains(name types.BranchName) bool {
	for _, b := range x.Branches {
		if b == name {
			return true
		}
	}
	return false
}
