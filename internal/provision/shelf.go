package provision

import "fmt"

// shelfScript renders the MEL shelf file registering the one-click launcher.
// The host sources every prefs/shelves/shelf_*.mel file at startup.
func shelfScript(shelfName string) string {
	return fmt.Sprintf(`global proc shelf_%s () {
    global string $gBuffStr;
    global string $gBuffStr0;
    global string $gBuffStr1;

    shelfButton
        -enableCommandRepeat 1
        -enable 1
        -width 35
        -height 35
        -manage 1
        -visible 1
        -label "DemBones"
        -annotation "Open Dem Bones Tool - Auto Rigging"
        -image "%s"
        -style "iconOnly"
        -command "python(\"import dembones_maya_tool; dembones_maya_tool.show_ui()\")"
        -sourceType "mel"
    ;
}
`, shelfName, IconName)
}
