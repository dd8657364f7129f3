package chamber

import "math/big"

// convertToShares computes the ERC-4626 asset-to-share rate: shares =
// assets * totalSupply / totalAssets, defaulting to 1:1 when the vault is
// empty. roundUp controls rounding direction; callers round down on
// user-receiving legs (deposit's minted shares) and up on user-paying legs
// (withdraw's burned shares).
func convertToShares(assets, totalSupply, totalAssets *big.Int, roundUp bool) *big.Int {
	if totalSupply.Sign() == 0 || totalAssets.Sign() == 0 {
		return new(big.Int).Set(assets)
	}
	numerator := new(big.Int).Mul(assets, totalSupply)
	return divRound(numerator, totalAssets, roundUp)
}

// convertToAssets computes the ERC-4626 share-to-asset rate: assets =
// shares * totalAssets / totalSupply, defaulting to 1:1 when the vault is
// empty.
func convertToAssets(shares, totalSupply, totalAssets *big.Int, roundUp bool) *big.Int {
	if totalSupply.Sign() == 0 {
		return new(big.Int).Set(shares)
	}
	numerator := new(big.Int).Mul(shares, totalAssets)
	return divRound(numerator, totalSupply, roundUp)
}

func divRound(numerator, denominator *big.Int, roundUp bool) *big.Int {
	if denominator.Sign() == 0 {
		return big.NewInt(0)
	}
	quo, rem := new(big.Int).QuoRem(numerator, denominator, new(big.Int))
	if roundUp && rem.Sign() != 0 {
		quo.Add(quo, big.NewInt(1))
	}
	return quo
}
