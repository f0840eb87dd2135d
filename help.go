package foscam

// HelpText is printed verbatim, indentation included.
const HelpText = `
        Foscam Controller Help:
        --------------------------------------
        Command line arguments:
          -a, --monitor-address   IP address or hostname of the Foscam camera.
          -u, --username          Foscam camera username.
          -p, --password          Foscam camera password.
          -c, --command           Command to send to the camera.
          -s, --preset            Preset value for set_preset command
          -n, --iterations        Number of times to execute the command (default: 1)

        Available Commands:
          reset                  - Reset Camera
          move_up                - Move Up
          move_down              - Move Down
          move_left              - Move Left
          move_right             - Move Right
          move_up_right          - Diagonally Up Right
          move_down_right        - Diagonally Down Right
          move_up_left           - Diagonally Up Left
          move_down_left         - Diagonally Down Left
          stop                   - Stop Movement
          set_preset <num>       - Set Preset (e.g., set_preset 1)
          goto_preset <num>      - Go to Preset (e.g., goto_preset 1)
          iron                   - Turn IR On (Wake)
          iroff                  - Turn IR Off (Sleep)
          reboot                 - Reboot Camera
        `
