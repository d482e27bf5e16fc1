package response_models

import "blockpass/internal/refundpolicy"

type SolidityResponse struct {
	ContractName string                `json:"contract_name"`
	Solidity     string                `json:"solidity"`
	Schedule     refundpolicy.Schedule `json:"schedule"`
}
