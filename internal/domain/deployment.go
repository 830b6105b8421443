package domain

import (
	"github.com/ethereum/go-ethereum/common"
)

// ContractName is the artifact deployed by yieldx-deploy
const ContractName = "YieldXNetwork"

// DeploymentResult describes a confirmed contract creation
type DeploymentResult struct {
	ContractName string
	Address      common.Address
	TxHash       common.Hash
	BlockNumber  uint64
}
