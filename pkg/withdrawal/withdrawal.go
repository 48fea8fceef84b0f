// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package withdrawal

import (
	"errors"
	"fmt"

	"github.com/consensys/go-mathex/pkg/mathex"
	"github.com/consensys/go-mathex/pkg/word"
	"github.com/holiman/uint256"
)

// ErrInputInvalid signals withdrawal inputs outside their permitted ranges.
var ErrInputInvalid = errors.New("withdrawal input invalid")

// Input captures the state of a pool at the time of a base token withdrawal.
// Amounts are at most 2^128 - 1, and fees are given in PPM.
type Input struct {
	// BNT trading liquidity
	A uint256.Int
	// Base token trading liquidity
	B uint256.Int
	// Base token excess amount
	C uint256.Int
	// Base token staked amount
	E uint256.Int
	// Base token external protection vault balance
	W uint256.Int
	// Trading fee (PPM)
	M uint256.Int
	// Withdrawal fee (PPM)
	N uint256.Int
	// Base token withdrawal amount (at most E)
	X uint256.Int
}

// Output holds the amounts resulting from a withdrawal.
type Output struct {
	// BNT amount to add to the trading liquidity and to the master vault
	P mathex.Sint256
	// BNT amount to add to the protocol equity
	Q mathex.Sint256
	// Base token amount to add to the trading liquidity
	R mathex.Sint256
	// Base token amount to transfer from the master vault to the provider
	S uint256.Int
	// BNT amount to mint directly for the provider
	T uint256.Int
	// Base token amount to transfer from the external protection vault to the
	// provider
	U uint256.Int
	// Base token amount to keep in the pool as a withdrawal fee
	V uint256.Int
}

// Options controls which strategies the calculation may choose from.
type Options struct {
	// ArbitrageDeficit permits the arbitrage strategy when the pool is in
	// deficit.  This is off by default.
	ArbitrageDeficit bool
}

var (
	ppm        = uint256.NewInt(mathex.PPMResolution)
	maxUint128 = word.W128.Max()
)

// Calculate determines the amounts resulting from the withdrawal of X base
// tokens.  The pool is in deficit when E*(1-N) > B+C, and in surplus
// otherwise.  In each case one of three strategies applies:
//
// Arbitrage: when the pool is stable and can afford it, rebalance the trading
// liquidity (P and R) and pay X*(1-N) from the vault.
//
// Default: when there is BNT trading liquidity, reduce both sides of the
// trading liquidity and (in deficit) compensate from external protection (T
// and U).
//
// Bootstrap: otherwise pay from the vault and (in deficit) from external
// protection.
//
// In all cases V = X*N is kept as a fee.
func Calculate(in Input, opts Options) (Output, error) {
	var (
		c   calc
		out Output
	)
	//
	if err := validate(in); err != nil {
		return Output{}, err
	}
	//
	a, b, cc, e, w, m, n, x := &in.A, &in.B, &in.C, &in.E, &in.W, &in.M, &in.N, &in.X
	//
	y := c.div(c.mul(x, c.sub(ppm, n)), ppm)
	eNet := c.div(c.mul(e, c.sub(ppm, n)), ppm)
	bc := c.add(b, cc)
	//
	if c.err == nil && eNet.Gt(bc) {
		f := c.sub(eNet, bc)
		g := c.sub(e, bc)
		//
		switch {
		case opts.ArbitrageDeficit && c.isStable(b, cc, e, x) && c.affordableDeficit(b, e, f, g, m, n, x):
			out = c.arbitrageDeficit(a, b, e, f, m, x, y)
		case !a.IsZero():
			out = c.defaultDeficit(a, b, cc, e, y)
			out.T, out.U = c.externalProtection(a, b, e, g, y, w)
		default:
			out.S = *c.div(c.mul(y, cc), e)
			out.T, out.U = c.externalProtection(a, b, e, g, y, w)
		}
	} else if c.err == nil {
		f := mathex.SubMax0(bc, e)
		//
		switch {
		case !f.IsZero() && c.isStable(b, cc, e, x) && c.affordableSurplus(b, e, f, m, n, x):
			out = c.arbitrageSurplus(a, b, e, f, m, n, x, y)
		case !a.IsZero():
			out = c.defaultSurplus(a, b, cc, y)
		default:
			out.S = *y
		}
	}
	//
	out.V = *c.sub(x, y)
	//
	if c.err != nil {
		return Output{}, fmt.Errorf("withdrawal of %s: %w", x.Dec(), c.err)
	}
	//
	return out, nil
}

func validate(in Input) error {
	for _, v := range []*uint256.Int{&in.A, &in.B, &in.C, &in.E, &in.W} {
		if v.Gt(maxUint128) {
			return fmt.Errorf("amount %s exceeds %s: %w", v.Dec(), maxUint128.Dec(), ErrInputInvalid)
		}
	}
	//
	for _, v := range []*uint256.Int{&in.M, &in.N} {
		if v.Gt(ppm) {
			return fmt.Errorf("fee %s exceeds %s: %w", v.Dec(), ppm.Dec(), ErrInputInvalid)
		}
	}
	//
	if in.X.Gt(&in.E) {
		return fmt.Errorf("withdrawal %s exceeds stake %s: %w", in.X.Dec(), in.E.Dec(), ErrInputInvalid)
	}
	//
	return nil
}

// Returns x < e*c/(b+c)
func (c *calc) isStable(b, cc, e, x *uint256.Int) bool {
	return c.mul(b, x).Lt(c.mul(cc, c.sub(e, x)))
}

// Returns b*e*((e*(1-n)-b-c)*m+e*n) > (e*(1-n)-b-c)*x*(e-b-c)*(1-m)
func (c *calc) affordableDeficit(b, e, f, g, m, n, x *uint256.Int) bool {
	lhs := mathex.Mul512(c.mul(b, e), c.add(c.mul(f, m), c.mul(e, n)))
	rhs := mathex.Mul512(c.mul(f, x), c.mul(g, c.sub(ppm, m)))
	//
	return c.err == nil && mathex.Gt512(lhs, rhs)
}

// Returns b*e*((b+c-e)*m+e*n) > (b+c-e)*x*(b+c-e*(1-n))*(1-m)
func (c *calc) affordableSurplus(b, e, f, m, n, x *uint256.Int) bool {
	lhs := mathex.Mul512(c.mul(b, e), c.mul(c.add(c.mul(f, m), c.mul(e, n)), ppm))
	rhs := mathex.Mul512(c.mul(f, x), c.mul(c.add(c.mul(f, ppm), c.mul(e, n)), c.sub(ppm, m)))
	//
	return c.err == nil && mathex.Gt512(lhs, rhs)
}

// p = a*x*(e*(1-n)-b-c)*(1-m)/(b*e-x*(e*(1-n)-b-c)*(1-m))
// r = -x*(e*(1-n)-b-c)/e
// s = x*(1-n)
func (c *calc) arbitrageDeficit(a, b, e, f, m, x, y *uint256.Int) Output {
	var out Output
	//
	i := c.mul(f, c.sub(ppm, m))
	j := c.sub(c.mul(b, c.mul(e, ppm)), c.mulDivF(x, i, uint256.NewInt(1)))
	out.P = mathex.ToPos256(c.mulDivF(c.mul(a, x), i, j))
	out.R = mathex.ToNeg256(c.mulDivF(x, f, e))
	out.S = *y
	//
	return out
}

// p = -a*x*(b+c-e*(1-n))/(b*e*(1-m)+x*(b+c-e*(1-n))*(1-m))
// r = x*(b+c-e*(1-n))/e
// s = x*(1-n)
func (c *calc) arbitrageSurplus(a, b, e, f, m, n, x, y *uint256.Int) Output {
	var out Output
	//
	i := c.add(c.mul(f, ppm), c.mul(e, n))
	j := c.add(c.mul(b, c.mul(e, c.sub(ppm, m))), c.mulDivF(x, c.mul(i, c.sub(ppm, m)), ppm))
	out.P = mathex.ToNeg256(c.mulDivF(c.mul(a, x), i, j))
	out.R = mathex.ToPos256(c.mulDivF(x, i, c.mul(e, ppm)))
	out.S = *y
	//
	return out
}

// p = q = -a*z/(b*e), r = -z/e and s = x*(1-n)*(b+c)/e, where
// z = max(x*(1-n)*b-c*(e-x*(1-n)),0)
func (c *calc) defaultDeficit(a, b, cc, e, y *uint256.Int) Output {
	var out Output
	//
	z := mathex.SubMax0(c.mul(y, b), c.mul(cc, c.sub(e, y)))
	out.P = mathex.ToNeg256(c.mulDivF(a, z, c.mul(b, e)))
	out.Q = out.P
	out.R = mathex.ToNeg256(c.div(z, e))
	out.S = *c.mulDivF(y, c.add(b, cc), e)
	//
	return out
}

// p = q = -a*z/b, r = -z and s = x*(1-n), where z = max(x*(1-n)-c,0)
func (c *calc) defaultSurplus(a, b, cc, y *uint256.Int) Output {
	var out Output
	//
	z := mathex.SubMax0(y, cc)
	out.P = mathex.ToNeg256(c.mulDivF(a, z, b))
	out.Q = out.P
	out.R = mathex.ToNeg256(z)
	out.S = *y
	//
	return out
}

// Determine the compensation paid from external protection.  Let h =
// x*(1-n)*(e-b-c)/e be the shortfall.  When h exceeds the protection vault
// balance w, the vault is drained (u = w) and the remainder is minted in BNT
// (t = a*(h-w)/b) if there is BNT trading liquidity.  Otherwise, u = h and t =
// 0.
func (c *calc) externalProtection(a, b, e, g, y, w *uint256.Int) (uint256.Int, uint256.Int) {
	yg := c.mul(y, g)
	we := c.mul(w, e)
	//
	if !yg.Gt(we) {
		return uint256.Int{}, *c.div(yg, e)
	} else if a.IsZero() {
		return uint256.Int{}, *w
	}
	//
	return *c.mulDivF(a, c.sub(yg, we), c.mul(b, e)), *w
}
