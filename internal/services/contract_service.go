package services

import (
	"context"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"blockpass/internal/models/request_models"
	"blockpass/internal/models/response_models"
	"blockpass/internal/refundpolicy"
	"blockpass/pkg/utils"
)

// ContractService renders a refund policy into deployable Solidity
// source. The embedded threshold/percent arrays come from the same
// canonical schedule the off-chain calculator evaluates, never from a
// second parse of the raw rules.
type ContractServiceInterface interface {
	GenerateSolidity(ctx context.Context, request request_models.SolidityRequest) (*response_models.SolidityResponse, error)
}

type ContractService struct{}

func NewContractService() ContractServiceInterface {
	return &ContractService{}
}

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]`)

// sanitizeContractName turns a free-form pass name into a valid
// Solidity identifier.
func sanitizeContractName(name string) string {
	spaced := nonAlnum.ReplaceAllString(name, " ")
	var b strings.Builder
	for _, word := range strings.Fields(spaced) {
		b.WriteString(strings.ToUpper(word[:1]))
		if len(word) > 1 {
			b.WriteString(strings.ToLower(word[1:]))
		}
	}
	base := b.String()
	if base == "" {
		return "TrustGymPolicy"
	}
	if base[0] >= '0' && base[0] <= '9' {
		return "TrustGym" + base
	}
	return base
}

var weiPerETH = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// ethToWei converts a decimal ETH amount to wei, truncating anything
// below one wei. Only positive amounts are valid.
func ethToWei(value string) (*big.Int, error) {
	rat, ok := new(big.Rat).SetString(value)
	if !ok {
		return nil, fmt.Errorf("%w: invalid ETH amount %q", utils.ErrInvalidContractSpec, value)
	}
	if rat.Sign() <= 0 {
		return nil, fmt.Errorf("%w: ETH amount must be positive", utils.ErrInvalidContractSpec)
	}
	rat.Mul(rat, new(big.Rat).SetInt(weiPerETH))
	return new(big.Int).Quo(rat.Num(), rat.Denom()), nil
}

func joinInt64(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}

func (c *ContractService) GenerateSolidity(ctx context.Context, request request_models.SolidityRequest) (*response_models.SolidityResponse, error) {
	if len(request.RefundRules) == 0 {
		return nil, fmt.Errorf("%w: refund rules required", utils.ErrInvalidContractSpec)
	}

	// The pass duration reuses the refund-rule unit table.
	duration, err := refundpolicy.Normalize([]refundpolicy.RawRule{{
		Period: request.DurationValue,
		Unit:   request.DurationUnit,
	}})
	if err != nil {
		return nil, fmt.Errorf("%w: invalid duration unit %q", utils.ErrInvalidContractSpec, request.DurationUnit)
	}
	durationSeconds := duration[0].ThresholdMinutes * 60

	schedule, err := refundpolicy.Normalize(request.RefundRules)
	if err != nil {
		return nil, err
	}

	priceETH := request.PriceETH
	if priceETH == "" {
		priceETH = "0.01"
	}
	priceWei, err := ethToWei(priceETH)
	if err != nil {
		return nil, err
	}

	contractName := sanitizeContractName(request.PassName)
	source := buildSolidity(contractName, request.PassName, priceWei, durationSeconds, schedule)

	return &response_models.SolidityResponse{
		ContractName: contractName,
		Solidity:     source,
		Schedule:     schedule,
	}, nil
}

func buildSolidity(contractName, passName string, priceWei *big.Int, durationSeconds int64, schedule refundpolicy.Schedule) string {
	thresholds := joinInt64(schedule.ThresholdSeconds())
	percents := joinInt64(schedule.Percents())

	return fmt.Sprintf(`// SPDX-License-Identifier: MIT
pragma solidity ^0.8.0;

import "@openzeppelin/contracts/token/ERC721/ERC721.sol";
import "@openzeppelin/contracts/utils/Counters.sol";

contract %s is ERC721 {
    using Counters for Counters.Counter;
    Counters.Counter private _tokenIds;

    address public owner;
    uint256 public subscriptionPrice = %s;
    uint256 public duration = %d;

    uint256[] public refundThresholds = [%s];
    uint256[] public refundPercents = [%s];

    struct Subscription {
        uint256 startTimestamp;
        uint256 pricePaid;
    }

    mapping(uint256 => Subscription) public subscriptions;
    uint256 public gymStatus = 0;

    mapping(uint256 => bool) public hasVoted;
    uint256 public panicVotes;
    uint256 public activeMembers;

    constructor() ERC721("%s", "BPASS") {
        owner = msg.sender;
    }

    function register() public payable {
        require(msg.value == subscriptionPrice, "Send exact ETH amount");
        require(gymStatus == 0, "Gym is closed");

        _tokenIds.increment();
        uint256 newItemId = _tokenIds.current();

        _mint(msg.sender, newItemId);

        subscriptions[newItemId] = Subscription({
            startTimestamp: block.timestamp,
            pricePaid: msg.value
        });

        activeMembers++;
    }

    function _calculateRefund(uint256 tokenId) internal view returns (uint256) {
        Subscription memory sub = subscriptions[tokenId];
        uint256 elapsedTime = block.timestamp - sub.startTimestamp;

        for (uint256 i = 0; i < refundThresholds.length; i++) {
            if (elapsedTime < refundThresholds[i]) {
                return (sub.pricePaid * refundPercents[i]) / 100;
            }
        }

        return 0;
    }

    function quit(uint256 tokenId) public {
        require(ownerOf(tokenId) == msg.sender, "Not your ticket");
        require(gymStatus == 0, "Gym is bankrupt. Use emergencyWithdraw");

        uint256 refundAmount = _calculateRefund(tokenId);

        delete subscriptions[tokenId];
        _burn(tokenId);
        activeMembers--;

        if (refundAmount > 0) {
            (bool success, ) = msg.sender.call{value: refundAmount}("");
            require(success, "Transfer failed");
        }
    }

    function votePanic(uint256 tokenId) public {
        require(ownerOf(tokenId) == msg.sender, "Not your ticket");
        require(!hasVoted[tokenId], "Already voted");
        require(gymStatus == 0, "Already status 1");

        hasVoted[tokenId] = true;
        panicVotes++;

        if (panicVotes * 2 > activeMembers) {
            gymStatus = 1;
        }
    }

    function emergencyWithdraw(uint256 tokenId) public {
        require(gymStatus == 1, "Gym is not bankrupt yet");
        require(ownerOf(tokenId) == msg.sender, "Not your ticket");

        uint256 refundAmount = _calculateRefund(tokenId);

        if (address(this).balance < refundAmount) {
            refundAmount = address(this).balance;
        }

        delete subscriptions[tokenId];
        _burn(tokenId);
        if (activeMembers > 0) activeMembers--;

        if (refundAmount > 0) {
            (bool success, ) = msg.sender.call{value: refundAmount}("");
            require(success, "Transfer failed");
        }
    }

    function ownerWithdraw(uint256 amount) public {
        require(msg.sender == owner, "Only owner");
        require(gymStatus == 0, "Bankrupt! Funds locked.");
        require(address(this).balance >= amount, "Not enough funds");

        (bool success, ) = owner.call{value: amount}("");
        require(success, "Transfer failed");
    }

    function checkRefundStatus(uint256 tokenId) public view returns (string memory status, uint256 amount) {
        uint256 calcAmount = _calculateRefund(tokenId);

        if (gymStatus == 1) {
            return ("Bankrupt Mode (Status 1)", calcAmount);
        } else {
            return ("Normal Mode (Status 0)", calcAmount);
        }
    }
}
`, contractName, priceWei.String(), durationSeconds, thresholds, percents, passName)
}
