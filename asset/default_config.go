package asset

// DefaultConfigTOML is the annotated configuration written by -write-config
// Values mirror the built-in defaults
const DefaultConfigTOML = `# monkey-runner configuration
debug = false

[audio]
enabled = true
master_volume = 0.8
music_volume = 0.2
sample_rate = 48000
# Per-cue volume, 0.0-1.0
cues = { jump = 1.0, land = 1.0, broccoli = 1.0, cheese = 1.0, ghostPepper = 1.0, atomic = 1.0, comboBreak = 1.0, juicy = 1.0, dry = 1.0 }

[display]
color_mode = "auto" # auto, 256, truecolor
cell_width = 10     # Simulation px per terminal column
cell_height = 20    # Simulation px per terminal row
asset_dir = "assets"

# Key name -> action. "none" unbinds a default key
[keys]
# a = "use_atomic"

# === Consumables ===
# Broccoli keeps the shortest range, atomic the longest range and the lowest weight

[tuning.powers.broccoli]
range = 150.0
weight = 40
gain = 25
pose_frames = 120
particle = "#90EE90"
food = "#2ECC40"

[tuning.powers.cheese]
range = 200.0
weight = 30
gain = 35
pose_frames = 120
particle = "#FFD700"
food = "#FFDC00"

[tuning.powers.ghost-pepper]
range = 250.0
weight = 30
gain = 75
pose_frames = 120
particle = "#FF0000"
food = "#FF4136"

[tuning.powers.atomic]
range = 350.0
weight = 20
gain = 100
pose_frames = 120
particle = "#FF4500"
food = "#B10DC9"

# === Enemies ===

[tuning.enemies.alligator]
points = 30
width = 60.0
height = 40.0
color = "#2E8B57"

[tuning.enemies.crab]
points = 20
width = 40.0
height = 30.0
color = "#FF4040"

[tuning.enemies.scorpion]
points = 40
width = 45.0
height = 35.0
color = "#8B4513"

# === Spawning (frames) ===

[tuning.spawn]
food_interval = 120
enemy_base_interval = 600
enemy_min_interval = 300
initial_inventory = 5
`
