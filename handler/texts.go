package handler

const (
	startText = `👋 Welcome to ShiftCopilot!

I'm your DeFi copilot powered by Safe AA, SideShift, and Aave on Base.

*Getting Started:*
1. /link - Connect your wallet and deploy your Safe AA
2. /status - View your portfolio and gas levels
3. /refuel - Auto-refuel Base gas when low
4. /rebalance - Rebalance your portfolio (e.g., /rebalance stables 30)
5. /settings - Configure auto-execution and limits

Type /help for more details.`

	helpText = `📚 *ShiftCopilot Commands*

*/start* - Welcome message and overview
*/link* - Connect wallet and deploy Safe AA on Base
*/status* - View balances, allocations, gas, and policy usage
*/refuel* - Trigger gas refuel (auto-triggers at <0.05 ETH)
*/rebalance <type> <percent>* - Rebalance portfolio
  Example: /rebalance stables 30
*/settings* - View/change auto-exec and policy settings
*details* - Show detailed breakdown of last action

*Policy Limits:*
• Daily budget: $100 (shared across all operations)
• Per-transaction cap: $100
• Min gas threshold: 0.05 ETH
• Slippage tolerance: 0.5%

*Supported Assets:*
• ETH, USDC, USDT on Base`

	linkText = `🔗 *Link Your Wallet*

To get started, you need to connect your wallet and deploy a Safe AA on Base.

*Steps:*
1. Connect your wallet
2. Sign the message to verify ownership
3. We'll deploy a dedicated Safe AA for you on Base
4. You'll receive a session key for secure operations

⚠️ This feature is under development.`

	statusText = `📊 *Portfolio Status*

*Balances (Base):*
• ETH: 0.15 ($300.00)
• USDC: 500.00 ($500.00)
• USDT: 200.00 ($200.00)
*Total:* $1,000.00

*Allocations:*
• Stables: 70% ($700)
• ETH: 30% ($300)

*Gas Status (Base):*
• Native balance: 0.15 ETH ✅
• Threshold: 0.05 ETH

*Policy Usage (Today):*
• Spent: $25.00 / $100.00
• Remaining: $75.00

Type "details" to see the last action breakdown.

⚠️ This is mock data. Real implementation pending.`

	refuelText = `⛽ *Gas Refuel*

*Current Status:*
• Native balance: 0.15 ETH
• Threshold: 0.05 ETH
• Status: ✅ Sufficient

No refuel needed at this time. Auto-refuel will trigger when balance drops below 0.05 ETH.

⚠️ This is mock data. Real implementation pending.`

	rebalanceText = `🔄 *Rebalance Simulation*

*Target:* %s %s%%

*Current Allocation:*
• Stables: 70%% ($700)
• ETH: 30%% ($300)

*After Rebalance:*
• Stables: %s%% ($%s)
• ETH: %s%% ($%s)

❌ Cannot execute: Would exceed daily budget of $100.

⚠️ This is mock data. Real implementation pending.`

	settingsText = `⚙️ *Settings*

*Auto-Execution:*
• Status: ✅ Enabled
• Window: Within policy limits

*Policy Limits:*
• Daily budget: $100.00 (fixed)
• Per-tx cap: $100.00 (fixed)
• Min gas: 0.05 ETH
• Slippage: 0.5%

*Funding Priority:*
1. USDC
2. USDT
3. ETH

⚠️ This is mock data. Real implementation pending.`

	detailsText = `📋 *Last Action Details*

*Action:* Refuel
*Status:* ✅ Completed

*Fees:*
• SideShift fee: $1.20
• Gas fee: $0.80
• Total: $2.00

⚠️ This is mock data. Real implementation pending.`

	unknownText = `❓ *Unknown Command*

I didn't understand that command. Here are the available commands:

• /start - Get started
• /help - View all commands
• /link - Connect wallet
• /status - View portfolio
• /refuel - Trigger gas refuel
• /rebalance <type> <percent> - Rebalance portfolio
• /settings - Manage settings
• details - Show last action details

Type /help for more information.`
)
