package database

import (
	"context"
	"fmt"

	"github.com/sanctuary-tracker/api/internal/models"
)

// SeedActivities is the base activity catalog. Inserts are idempotent
// (ON CONFLICT DO NOTHING), so seeding an already-populated database is safe.
var SeedActivities = []models.Activity{
	// Daily prep errands
	{ID: "daily_familiar_vendor", Name: "Familiar vendor (expeditions, contracts)", Type: models.ActivityTypeDaily, Priority: models.PriorityB, TimeEstimate: "30 sec - 1 min", Benefit: "Resource management and familiar progress.", Detail: "Before running missions, check the daily familiar expeditions and contract offers.", Mode: models.ActivityModeSolo},
	{ID: "daily_elder_rift_claim", Name: "Elder Rift (claim free rare crests)", Type: models.ActivityTypeDaily, Priority: models.PriorityAPlus, TimeEstimate: "20 sec", Benefit: "Free resonance progress.", Detail: "Claim the free daily rare crests at the Elder Rift. Guaranteed progress for 20 seconds of effort.", Mode: models.ActivityModeSolo},
	{ID: "daily_hilts_merchant", Name: "Hilts merchant (check offers)", Type: models.ActivityTypeDaily, Priority: models.PriorityC, TimeEstimate: "1 min", Benefit: "Catch discounted or limited-time offers.", Detail: "Check the hilts merchant for special offers, especially the time-limited ones.", Mode: models.ActivityModeSolo},
	{ID: "daily_player_market", Name: "Player market (check sales/offers)", Type: models.ActivityTypeDaily, Priority: models.PriorityC, TimeEstimate: "1 min", Benefit: "Keeps your economy moving.", Detail: "Check whether your listings sold and scan for bargains.", Mode: models.ActivityModeSolo},
	// Daily core activities
	{ID: "daily_gem_farm", Name: "Normal gem farming (group dungeon / solo castle)", Type: models.ActivityTypeDaily, Priority: models.PrioritySPlus, TimeEstimate: "4 min group / 20-60 min solo", RewardsNote: "Up to 12 unbound normal gems per day, plus bound ones.", Benefit: "Steady platinum and secondary attribute progress.", Detail: "Top daily priority. A group of four clears fastest; solo farming works but is slower. Unbound gems you skip respawn as bound.", Mode: models.ActivityModeBoth, Preference: modePtr(models.ActivityModeGroup)},
	{ID: "daily_mission_board", Name: "Daily missions (mission board)", Type: models.ActivityTypeDaily, Priority: models.PriorityB, TimeEstimate: "15-35 min (8 missions)", RewardsNote: "XP, materials, occasional items.", Benefit: "Stable progress; pending tasks pile up if you skip a day.", Detail: "Complete at least 8 board missions each day to keep pace.", Mode: models.ActivityModeSolo},
	{ID: "daily_abyssal_essences", Name: "Abyssal essences hand-in (10 essences)", Type: models.ActivityTypeDaily, Priority: models.PriorityBPlus, TimeEstimate: "Passive while farming", RewardsNote: "40 battle pass points plus monster essences.", Benefit: "Pass progress with no extra time.", Detail: "Collect 10 abyssal essences while gem farming and turn them in.", Mode: models.ActivityModeSolo},
	{ID: "daily_bestiary", Name: "Bestiary (10 essences)", Type: models.ActivityTypeDaily, Priority: models.PriorityB, TimeEstimate: "5-20 min, often passive", RewardsNote: "Battle pass points and a chance at legendaries.", Benefit: "Advances almost for free while doing other content.", Detail: "Fill the bestiary with 10 essences gathered in the open world.", Mode: models.ActivityModeSolo},
	{ID: "daily_bonus_check", Name: "Double-reward activity (check codex)", Type: models.ActivityTypeDaily, Priority: models.PriorityA, TimeEstimate: "Varies", Benefit: "Maximizes time efficiency.", Detail: "The bonus activity rotates daily; check the codex and prioritize it.", Mode: models.ActivityModeSolo},
	{ID: "daily_sanctum_chest", Name: "Sanctum legacy (first chest)", Type: models.ActivityTypeDaily, Priority: models.PriorityC, TimeEstimate: "3-10 min, passive with pets", RewardsNote: "Sanctum materials.", Benefit: "Slow but permanent stat progress.", Detail: "Open the first sanctum chest when you have a few minutes, or send pets.", Mode: models.ActivityModeSolo},
	// Weeklies
	{ID: "weekly_gem_cap", Name: "Weekly normal gem cap", Type: models.ActivityTypeWeekly, Priority: models.PrioritySPlus, TimeEstimate: "45-120 min", RewardsNote: "Weekly cap: 63 bound + 63 unbound gems.", Benefit: "Secondary attributes and platinum; skipping sets you back.", Detail: "Hit the 63/63 gem cap before the week ends, in any of the farming zones.", Mode: models.ActivityModeBoth},
	{ID: "weekly_rift_embers", Name: "Elder Rift embers", Type: models.ActivityTypeWeekly, Priority: models.PriorityS, TimeEstimate: "2 min per run / 30-90 min weekly", RewardsNote: "Embers for crafting legendary crests, plus codex points.", Benefit: "Resonance progress and codex points.", Detail: "Run Elder Rifts for embers and craft legendary crests at the jeweler. Cap out each week.", Mode: models.ActivityModeSolo},
	{ID: "weekly_helliquary", Name: "Helliquary raid with clan", Type: models.ActivityTypeWeekly, Priority: models.PriorityAPlus, TimeEstimate: "20-60 min", RewardsNote: "Helliquary materials and crests.", Benefit: "Permanent progress that cannot be recovered if skipped.", Detail: "Coordinate with the clan to clear the weekly Helliquary bosses.", Mode: models.ActivityModeGroup},
	{ID: "weekly_boss_challenge", Name: "Weekly boss challenge", Type: models.ActivityTypeWeekly, Priority: models.PriorityB, TimeEstimate: "10-20 min", RewardsNote: "Battle pass points and eternal gear.", Benefit: "Useful while gearing up; skippable otherwise.", Detail: "Run the weekly boss fight if you need gear or pass points.", Mode: models.ActivityModeBoth},
	{ID: "weekly_terror_rifts", Name: "Terror rifts", Type: models.ActivityTypeWeekly, Priority: models.PriorityBPlus, TimeEstimate: "3 min per run / 20-60 min weekly", RewardsNote: "Terror essences (sellable) and eternal-affix legendaries.", Benefit: "Platinum income and gear upgrades.", Detail: "Run terror rifts until an essence drops; sell or stockpile.", Mode: models.ActivityModeSolo},
	{ID: "weekly_consume_essences", Name: "Consume 10 terror essences", Type: models.ActivityTypeWeekly, Priority: models.PriorityBPlus, TimeEstimate: "10-30 min", RewardsNote: "Guaranteed high-quality legendary plus materials.", Benefit: "Gear refresh when you need one.", Detail: "Spend 10 essences for a guaranteed legendary; hold the stock if your gear is stable.", Mode: models.ActivityModeSolo},
	{ID: "weekly_oblivion_pillars", Name: "Oblivion pillars (save for a monthly session)", Type: models.ActivityTypeWeekly, Priority: models.PriorityC, TimeEstimate: "0-120 min", RewardsNote: "Materials and legendary gear.", Benefit: "Best spent in one monthly upgrade session.", Detail: "Accumulate pillars and burn them in a single heavy farming session.", Mode: models.ActivityModeSolo},
	{ID: "weekly_vanguard", Name: "Vanguard", Type: models.ActivityTypeWeekly, Priority: models.PriorityC, TimeEstimate: "20-60 min", RewardsNote: "Assorted gear and seasonal prizes.", Benefit: "Optional extra.", Detail: "Only if you enjoy it or need its seasonal rewards.", Mode: models.ActivityModeGroup},
	{ID: "weekly_materials", Name: "Collect weekly materials", Type: models.ActivityTypeWeekly, Priority: models.PriorityB, TimeEstimate: "Passive + 10-20 min", RewardsNote: "Weekly materials; rhodolite is the key one.", Benefit: "Late-game gear refinement.", Detail: "Most arrives passively; top up manually if short.", Mode: models.ActivityModeSolo},
	{ID: "weekly_destruction_call", Name: "Call of destruction", Type: models.ActivityTypeWeekly, Priority: models.PriorityC, TimeEstimate: "~10 min", RewardsNote: "Rhodolite and a legendary chance.", Benefit: "Small material top-up.", Detail: "Do the weekly summon for extra rhodolite; not essential.", Mode: models.ActivityModeGroup},
	// Seasonal
	{ID: "season_battleground", Name: "Battleground (first 3 matches)", Type: models.ActivityTypeSeasonal, Priority: models.PriorityA, TimeEstimate: "20-45 min", RewardsNote: "Boosted daily rewards; seasonal track with gems, crests, reforge stones.", Benefit: "The most profitable PvP activity.", Detail: "Play the first three matches each day to advance the three-month reward track.", Mode: models.ActivityModeGroup},
	{ID: "season_tower_war", Name: "Tower war (first 3 matches)", Type: models.ActivityTypeSeasonal, Priority: models.PriorityB, TimeEstimate: "20-45 min", RewardsNote: "Seasonal normal gems.", Benefit: "Extra seasonal progress, lower priority.", Detail: "Only after finishing battleground matches.", Mode: models.ActivityModeGroup},
	{ID: "season_faction_crest", Name: "Faction activity crest", Type: models.ActivityTypeSeasonal, Priority: models.PriorityA, TimeEstimate: "10-30 min", RewardsNote: "1 legendary crest.", Benefit: "Linear resonance progress.", Detail: "Complete your faction's weekly activity for its crest.", Mode: models.ActivityModeGroup},
	{ID: "season_clan_towers", Name: "Clan towers (up to 2 crests)", Type: models.ActivityTypeSeasonal, Priority: models.PriorityA, TimeEstimate: "20-60 min", RewardsNote: "Usually 2 legendary crests.", Benefit: "Linear resonance progress.", Detail: "Join tower fights when your clan is active.", Mode: models.ActivityModeGroup},
	{ID: "season_merchant_crest", Name: "Merchant crest (buy with platinum)", Type: models.ActivityTypeSeasonal, Priority: models.PriorityA, TimeEstimate: "1-2 min", RewardsNote: "1 legendary crest.", Benefit: "Converts economy into resonance.", Detail: "Reserve platinum each week for the shop crest.", Mode: models.ActivityModeSolo},
	{ID: "season_clan_ticket_crest", Name: "Clan ticket crest", Type: models.ActivityTypeSeasonal, Priority: models.PriorityA, TimeEstimate: "5-15 min", RewardsNote: "1 legendary crest if requirements are met.", Benefit: "Resonance.", Detail: "Trade tickets or coins with the clan for the weekly crest.", Mode: models.ActivityModeGroup},
	{ID: "season_immortal_crest", Name: "Immortal shop crest", Type: models.ActivityTypeSeasonal, Priority: models.PriorityB, TimeEstimate: "2-5 min", RewardsNote: "1 crest, immortals only.", Benefit: "Resonance.", Detail: "Check the immortal shop weekly if eligible.", Mode: models.ActivityModeSolo},
}

// SeedEvents is the base scheduled event catalog
var SeedEvents = []models.ScheduledEvent{
	{ID: "battleground", Name: "Battleground", Times: []string{"08:00", "12:00", "18:00", "22:00"}, DurationMinutes: 60, Description: "8v8 PvP event. The first 3 matches of the day grant boosted rewards.", Category: models.EventCategoryPvP},
	{ID: "ancient_nightmare", Name: "Ancient Nightmare", Times: []string{"12:00", "20:30", "22:30"}, DurationMinutes: 30, Description: "World boss appearing in fixed zones. Drops legendaries and materials.", Category: models.EventCategoryWorldEvent},
	{ID: "demonic_gates", Name: "Demonic Gates", Times: []string{"12:00", "20:30", "22:00"}, DurationMinutes: 30, Description: "Group event. Defend against demon waves for rewards.", Category: models.EventCategoryWorldEvent},
	{ID: "vault_raid", Name: "Vault Raid", Times: []string{"12:00", "19:00"}, DurationMinutes: 30, Description: "Faction event. Raid the opposing faction's vault.", Category: models.EventCategoryFaction},
	{ID: "shadow_assembly", Name: "Shadow Assembly", Times: []string{"19:00"}, DurationMinutes: 60, Description: "Shadows-only event. Coordinate with your clan for special activities.", Category: models.EventCategoryFaction},
}

// SeedRewards is the base reward catalog
var SeedRewards = []models.Reward{
	{ID: "legendary_crest", Name: "Legendary crest", Description: "Guarantees a legendary gem from an Elder Rift run."},
	{ID: "rare_crest", Name: "Rare crest", Description: "Improves Elder Rift drops."},
	{ID: "normal_gems", Name: "Normal gems", Description: "Upgrade material for secondary attributes."},
	{ID: "platinum", Name: "Platinum", Description: "Tradeable premium currency."},
	{ID: "battle_points", Name: "Battle pass points", Description: "Advance the battle pass."},
	{ID: "terror_essence", Name: "Terror essence", Description: "Sellable, or consumable for a guaranteed legendary."},
	{ID: "reforge_stones", Name: "Reforge stones", Description: "Refine gear attribute rolls."},
	{ID: "eternal_gear", Name: "Eternal gear", Description: "Equipment with eternal affixes."},
	{ID: "materials", Name: "Materials", Description: "Assorted upgrade materials."},
}

type rewardLink struct {
	ownerID  string
	rewardID string
	quantity int
}

var activityRewardLinks = []rewardLink{
	{"daily_elder_rift_claim", "rare_crest", 3},
	{"daily_gem_farm", "normal_gems", 12},
	{"daily_gem_farm", "platinum", 1},
	{"daily_abyssal_essences", "battle_points", 40},
	{"weekly_gem_cap", "normal_gems", 126},
	{"weekly_rift_embers", "legendary_crest", 1},
	{"weekly_terror_rifts", "terror_essence", 7},
	{"weekly_consume_essences", "eternal_gear", 1},
	{"season_battleground", "reforge_stones", 3},
	{"season_merchant_crest", "legendary_crest", 1},
	{"season_clan_towers", "legendary_crest", 2},
}

var eventRewardLinks = []rewardLink{
	{"battleground", "reforge_stones", 1},
	{"battleground", "battle_points", 20},
	{"ancient_nightmare", "eternal_gear", 1},
	{"ancient_nightmare", "materials", 5},
	{"demonic_gates", "materials", 5},
	{"vault_raid", "platinum", 100},
	{"shadow_assembly", "battle_points", 40},
}

// Seed populates the catalog tables with the base data set. Safe to run
// repeatedly; every insert ignores conflicts.
func Seed(ctx context.Context, db *DB) error {
	activityRepo := NewActivityRepository(db)
	for i := range SeedActivities {
		if err := activityRepo.Create(ctx, &SeedActivities[i]); err != nil {
			return fmt.Errorf("failed to seed activity %s: %w", SeedActivities[i].ID, err)
		}
	}

	eventRepo := NewEventRepository(db)
	for i := range SeedEvents {
		if err := eventRepo.Create(ctx, &SeedEvents[i]); err != nil {
			return fmt.Errorf("failed to seed event %s: %w", SeedEvents[i].ID, err)
		}
	}

	for _, reward := range SeedRewards {
		_, err := db.ExecContext(ctx,
			`INSERT INTO rewards (id, name, description) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`,
			reward.ID, reward.Name, reward.Description,
		)
		if err != nil {
			return fmt.Errorf("failed to seed reward %s: %w", reward.ID, err)
		}
	}

	for _, link := range activityRewardLinks {
		_, err := db.ExecContext(ctx,
			`INSERT INTO activity_rewards (activity_id, reward_id, quantity) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			link.ownerID, link.rewardID, link.quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to link reward %s to activity %s: %w", link.rewardID, link.ownerID, err)
		}
	}

	for _, link := range eventRewardLinks {
		_, err := db.ExecContext(ctx,
			`INSERT INTO event_rewards (event_id, reward_id, quantity) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			link.ownerID, link.rewardID, link.quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to link reward %s to event %s: %w", link.rewardID, link.ownerID, err)
		}
	}

	return nil
}

func modePtr(m models.ActivityMode) *models.ActivityMode {
	return &m
}
